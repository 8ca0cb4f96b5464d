package main

import (
	"github.com/spf13/cobra"

	"github.com/evostat/entrokit/figures"
)

var figuresOut string

var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "Generate the figure datasets as JSON files",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := figures.WriteAll(figuresOut)
		if err != nil {
			return err
		}
		for _, f := range files {
			logger.Info("wrote figure dataset", "file", f)
		}
		return nil
	},
}

func init() {
	figuresCmd.Flags().StringVarP(&figuresOut, "out", "o", "figures-out", "output directory")
}
