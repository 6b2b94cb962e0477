// cmd/tourctl/main.go
// tourctl computes leaderboards from a YAML tour fixture without a running server,
// and carries a few operator chores (migrations, dev tokens).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("tourctl failed")
	}
}
