package app

type InstallBoardRequest struct {
	Package      string
	Architecture string
	Version      string
}

type InstallLibraryRequest struct {
	Name    string
	Version string
}

type SketchRequest struct {
	Sketch string
	Port   string
}
