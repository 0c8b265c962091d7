package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ralt/aptsources/internal/build"
	"github.com/ralt/aptsources/internal/cli"
	"github.com/ralt/aptsources/internal/family"
)

func main() {
	// Setup logging format
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := cli.NewRootCmd(family.Debian, build.Version)
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(exitCode(err))
	}
}

type exitCoder interface {
	ExitCode() int
}

func exitCode(err error) int {
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return 1
}
