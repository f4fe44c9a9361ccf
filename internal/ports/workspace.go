package ports

type WorkspaceInitializer interface {
	Init(root string, force bool) error
}
