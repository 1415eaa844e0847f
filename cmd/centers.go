package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/innpulsa-research/zasca-cli/internal/centers"
)

var centersClass string

var centersCmd = &cobra.Command{
	Use:   "centers",
	Short: "Reference center registry commands",
}

var centersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the reference centers of a class",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := registryForClass(centersClass)
		if err != nil {
			return err
		}
		for _, c := range reg.Centers() {
			fmt.Printf("%-16s %12.7f %13.7f\n", c.Name, c.Lat, c.Lon)
		}
		return nil
	},
}

var centersValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a YAML registry file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class := centers.Class(centersClass)
		if class != centers.ClassCity && class != centers.ClassProgram {
			return eris.Errorf("centers: unknown class %q (want city or program)", centersClass)
		}
		reg, err := centers.LoadFile(class, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ok: %d %s centers\n", reg.Len(), reg.Class())
		return nil
	},
}

func registryForClass(class string) (*centers.Registry, error) {
	switch centers.Class(class) {
	case centers.ClassCity:
		return centers.DefaultCity(), nil
	case centers.ClassProgram:
		return centers.DefaultProgram(), nil
	default:
		return nil, eris.Errorf("centers: unknown class %q (want city or program)", class)
	}
}

func init() {
	centersCmd.PersistentFlags().StringVar(&centersClass, "class", "city", "center class: city or program")
	centersCmd.AddCommand(centersListCmd)
	centersCmd.AddCommand(centersValidateCmd)
	rootCmd.AddCommand(centersCmd)
}
