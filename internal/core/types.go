package core

const (
	AppName       = "gemcp"
	AppVersion    = "0.2.0"
	RepositoryURL = "https://github.com/sandevgo/gemcp"
)
