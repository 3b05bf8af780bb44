package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ttourney/internal/ttourney/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := ttourney(); err != nil {
		logrus.Fatal(err)
	}
}

func ttourney() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
