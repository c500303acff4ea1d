package main

import (
	"fmt"

	"github.com/shiftwise/internal/encash"
	"github.com/shiftwise/internal/history"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var encashCmd = &cobra.Command{
	Use:   "encash",
	Short: "Split the EL closing balance into encashable and carried-forward days",
	Long: `Compute the year-end EL closing balance (opening + earned - availed) and how
much of it can be encashed above the carry-forward cap. Without flags the
saved balance is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := encashInput(cmd)
		if err != nil {
			return err
		}

		res, err := encash.Calculate(in)
		if err != nil {
			return err
		}

		fmt.Printf("Closing: %s | Encashable: %s | Carry forward: %s (cap %s)\n",
			res.ClosingBalance, res.Encashable, res.CarryForward, res.MaxCarryForward)

		if save, _ := cmd.Flags().GetBool("save"); save {
			if _, err := balanceBook.Save(history.Balance{Opening: in.Opening, Earned: in.Earned, Availed: in.Availed}); err != nil {
				return err
			}
			fmt.Println("Balance saved")
		}
		return nil
	},
}

// encashInput reads the ledger from flags, falling back to the saved balance
// when none of them is set.
func encashInput(cmd *cobra.Command) (encash.Input, error) {
	in := encash.Input{MaxCarryForward: decimal.NewFromFloat(cfg.MaxCarryForward)}

	f := cmd.Flags()
	if !f.Changed("opening") && !f.Changed("earned") && !f.Changed("availed") {
		data, err := balanceBook.Load()
		if err != nil {
			return in, err
		}
		if data.Current == nil {
			return in, fmt.Errorf("no saved balance; pass --opening, --earned and --availed")
		}
		in.Opening, in.Earned, in.Availed = data.Current.Opening, data.Current.Earned, data.Current.Availed
	} else {
		var err error
		if in.Opening, err = decimalFlag(cmd, "opening"); err != nil {
			return in, err
		}
		if in.Earned, err = decimalFlag(cmd, "earned"); err != nil {
			return in, err
		}
		if in.Availed, err = decimalFlag(cmd, "availed"); err != nil {
			return in, err
		}
	}

	if f.Changed("max-carry") {
		var err error
		if in.MaxCarryForward, err = decimalFlag(cmd, "max-carry"); err != nil {
			return in, err
		}
	}
	return in, nil
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	v, _ := cmd.Flags().GetString(name)
	d, err := encash.ParseDays(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Manage saved EL balances",
}

var balanceSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current EL balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var bal history.Balance
		var err error
		if bal.Opening, err = decimalFlag(cmd, "opening"); err != nil {
			return err
		}
		if bal.Earned, err = decimalFlag(cmd, "earned"); err != nil {
			return err
		}
		if bal.Availed, err = decimalFlag(cmd, "availed"); err != nil {
			return err
		}
		if err := encash.Validate(encash.Input{Opening: bal.Opening, Earned: bal.Earned, Availed: bal.Availed}); err != nil {
			return err
		}

		data, err := balanceBook.Save(bal)
		if err != nil {
			return err
		}
		fmt.Printf("Saved. %d earlier balance(s) in history\n", len(data.History))
		return nil
	},
}

var balanceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the current balance and its history",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := balanceBook.Load()
		if err != nil {
			return err
		}
		if !data.HasSavedData() {
			fmt.Println("No saved balances")
			return nil
		}

		if data.Current != nil {
			fmt.Print("Current: ")
			printBalance(*data.Current)
		}
		for i, b := range data.History {
			fmt.Printf("  %2d. ", i+1)
			printBalance(b)
		}
		return nil
	},
}

var balanceLoadCmd = &cobra.Command{
	Use:   "load <n>",
	Short: "Make history entry n the current balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		data, err := balanceBook.LoadFromHistory(i)
		if err != nil {
			return err
		}
		fmt.Print("Current: ")
		printBalance(*data.Current)
		return nil
	},
}

var balanceDeleteCmd = &cobra.Command{
	Use:     "delete <n>",
	Aliases: []string{"rm"},
	Short:   "Delete history entry n",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		if _, err := balanceBook.DeleteHistoryEntry(i); err != nil {
			return err
		}
		fmt.Printf("Deleted entry %d\n", i+1)
		return nil
	},
}

var balanceClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := balanceBook.Clear(); err != nil {
			return err
		}
		fmt.Println("Balance data cleared")
		return nil
	},
}

func printBalance(b history.Balance) {
	closing := encash.ClosingBalance(b.Opening, b.Earned, b.Availed)
	fmt.Printf("%s | Opening: %s | Earned: %s | Availed: %s | Closing: %s\n",
		b.SavedAt.Format("2006-01-02 15:04"), b.Opening, b.Earned, b.Availed, closing)
}

func init() {
	for _, c := range []*cobra.Command{encashCmd, balanceSaveCmd} {
		c.Flags().String("opening", "", "Opening EL balance in days")
		c.Flags().String("earned", "", "EL earned this year in days")
		c.Flags().String("availed", "", "EL availed this year in days")
	}
	encashCmd.Flags().String("max-carry", "", "Carry-forward cap in days (default from config)")
	encashCmd.Flags().Bool("save", false, "Save the balance after computing it")

	balanceCmd.AddCommand(balanceSaveCmd)
	balanceCmd.AddCommand(balanceListCmd)
	balanceCmd.AddCommand(balanceLoadCmd)
	balanceCmd.AddCommand(balanceDeleteCmd)
	balanceCmd.AddCommand(balanceClearCmd)
}
