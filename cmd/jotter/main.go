package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/oliverisaac/goli"
	"github.com/oliverisaac/jotter/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	goli.InitLogrus(logrus.InfoLevel)
}

func loadConfig() (types.Config, error) {
	err := godotenv.Load(".env")
	if err != nil && !os.IsNotExist(err) {
		logrus.Warnf("error loading .env: %v", err)
	}

	cfg, err := types.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	logrus.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jotter",
		Short:         "A small notes app with private and public notes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
