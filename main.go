package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/pawns/internal/pawns/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	// A .env file in the working directory may set PAWNS_CONFIG.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warn(err)
	}

	if err := pawns(); err != nil {
		logrus.Fatal(err)
	}
}

func pawns() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
