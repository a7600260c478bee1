package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mbarros/particle-clash/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the simulator version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clashsim version %s\n", version.Version)
		fmt.Printf("Commit: %s\n", version.Commit)
		fmt.Printf("Build date: %s\n", version.Date)
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
