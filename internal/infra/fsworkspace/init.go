package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/infra/config"
	"github.com/aalvaropc/tally/internal/ports"
)

type Initializer struct {
	cfg domain.Config
}

func NewInitializer() *Initializer {
	return &Initializer{cfg: domain.DefaultConfig()}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init writes a default tally.yaml into root and makes sure local state is git-ignored.
// An existing tally.yaml is kept unless force is set.
func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	if err := os.MkdirAll(filepath.Join(root, i.cfg.Paths.LogsDir), 0o755); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.mkdir",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.gitignore",
			Kind: domain.KindExecution,
			Path: filepath.Join(root, ".gitignore"),
			Err:  err,
		}
	}

	dst := filepath.Join(root, config.FileName)
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return nil
		}
	}

	b, err := config.Marshal(i.cfg)
	if err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.marshal",
			Kind: domain.KindExecution,
			Path: dst,
			Err:  err,
		}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.write",
			Kind: domain.KindExecution,
			Path: dst,
			Err:  err,
		}
	}
	return nil
}

func ensureGitignore(root string) error {
	const header = "# tally"
	entries := []string{
		".tally/",
		"*.json.tmp",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
