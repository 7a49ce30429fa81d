package config

// Libfile represents the structure of the libtarget.yaml configuration file.
type Libfile struct {
	Entry         string       `yaml:"entry"`
	Name          string       `yaml:"name"`
	Dest          string       `yaml:"dest"`
	ExtractCSS    *bool        `yaml:"extractCss"`
	SourceMap     bool         `yaml:"sourceMap"`
	TemplateDir   string       `yaml:"templateDir"`
	WrapperModule string       `yaml:"wrapperModule"`
	Bundler       []string     `yaml:"bundler"`
	Configure     ConfigureDTO `yaml:"configure"`
}

// ConfigureDTO represents the user customization applied to every variant.
type ConfigureDTO struct {
	Devtool string            `yaml:"devtool"`
	Alias   map[string]string `yaml:"alias"`
	Define  map[string]string `yaml:"define"`
	Output  OutputDTO         `yaml:"output"`
}

// OutputDTO represents the customizable output fields.
type OutputDTO struct {
	Path          string  `yaml:"path"`
	Filename      string  `yaml:"filename"`
	ChunkFilename string  `yaml:"chunkFilename"`
	PublicPath    *string `yaml:"publicPath"`
	Library       string  `yaml:"library"`
}

// PackageJSON holds the fields read from package.json.
type PackageJSON struct {
	Name string `json:"name"`
}
