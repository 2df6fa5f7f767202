package app

// Version information, injected at build time.
var (
	Version   string = "0.1.0"
	GitTag    string = "dev"
	BuildTime string = "1970-01-01T00:00:00+0000"
)

const (
	// Name is the application name.
	Name = "PicUp Agent"
)
