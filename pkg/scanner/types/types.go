package types

// Pattern identifies one family of interface identifiers.
type Pattern struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

type Match struct {
	Pattern Pattern
	Text    string
}
