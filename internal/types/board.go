package types

// BoardDescriptor identifies a selectable target device. The descriptor is
// owned by the external board manager; this tool reads it and never mutates
// it.
type BoardDescriptor struct {
	Board    string   `yaml:"board"`
	Platform Platform `yaml:"platform"`
}

// Platform describes the installed hardware platform a board belongs to.
type Platform struct {
	Package       PackageRef `yaml:"package"`
	Architecture  string     `yaml:"architecture"`
	RootBoardPath string     `yaml:"root_board_path"`
}

type PackageRef struct {
	Name string `yaml:"name"`
}
