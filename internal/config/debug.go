package config

import "os"

func IsDebug() bool {
	return os.Getenv("GEMCP_DEBUG") == "1"
}
