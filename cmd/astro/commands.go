package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"ask-astro/internal/domain/astrology"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "astro",
		Short:         "Zodiac and numerology helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newReadingCmd(),
		newLifePathCmd(),
		newDigitSumCmd(),
		newSignsCmd(),
	)
	return root
}

func newReadingCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "reading YYYY-MM-DD",
		Short: "Sign, element and life path number for a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := astrology.ParseBirthDate(args[0])
			if err != nil {
				return fmt.Errorf("%s", astrology.DateErrorMessage(err))
			}
			rd := astrology.NewReadingResponse(d)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rd)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s), life path %d\n", rd.Symbol, rd.Sign, rd.Element, rd.LifePathNumber)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newLifePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lifepath YYYY-MM-DD",
		Short: "Life path number for a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := astrology.ParseBirthDate(args[0])
			if err != nil {
				return fmt.Errorf("%s", astrology.DateErrorMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), astrology.LifePathNumber(d))
			return nil
		},
	}
}

func newDigitSumCmd() *cobra.Command {
	var reduce bool
	cmd := &cobra.Command{
		Use:   "digitsum N",
		Short: "Sum of the decimal digits of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("N must be a non-negative integer, got %q", args[0])
			}
			out := astrology.DigitSum(n)
			if reduce {
				out = astrology.ReduceToDigit(n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reduce, "reduce", false, "repeat until a single digit")
	return cmd
}

func newSignsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signs",
		Short: "Print the zodiac table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Sign", "Symbol", "Element", "Dates"})
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)

			for _, s := range astrology.Signs() {
				table.Append([]string{string(s.Sign), s.Symbol, string(s.Element), s.Label})
			}
			table.Render()
			return nil
		},
	}
}
