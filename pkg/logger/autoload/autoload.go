// Package autoload initializes the global zerolog logger from LOG_* env vars
// as a side effect of being imported.
package autoload

import (
	configx "github.com/harz05/onestBack/pkg/config"
	logx "github.com/harz05/onestBack/pkg/logger"
)

func init() {
	conf, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*conf)
}
