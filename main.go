package main

import (
	"fmt"
	"os"

	"fjacquet/charge-calc/cmd/batch"
	"fjacquet/charge-calc/cmd/calc"
	"fjacquet/charge-calc/cmd/detect"
	"fjacquet/charge-calc/cmd/export"
	"fjacquet/charge-calc/cmd/plot"
	"fjacquet/charge-calc/cmd/root"
	"fjacquet/charge-calc/internal/config"
)

func init() {
	// .env must be loaded before viper reads CHARGE_* variables in PersistentPreRun
	config.LoadEnv(nil)

	root.Init()

	root.Cmd.AddCommand(calc.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(plot.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
