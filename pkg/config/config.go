package config

// Config is the full set of settings
type Config struct {
	Builder   BuilderConfig   `koanf:"builder"`
	Clipboard ClipboardConfig `koanf:"clipboard"`
	Export    ExportConfig    `koanf:"export"`
	Server    ServerConfig    `koanf:"server"`
	Output    OutputConfig    `koanf:"output"`
}

type BuilderConfig struct {
	Placeholder string `koanf:"placeholder"`
	Autofill    bool   `koanf:"autofill"`
	ModeLevel   string `koanf:"mode_level"`
}

type ClipboardConfig struct {
	Strategies []string `koanf:"strategies"`
}

type ExportConfig struct {
	FileName string `koanf:"file_name"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}
