package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/inventory"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagInventoryPlain bool

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory shortage calculator",
	Long: `Track product stock against required amounts.

Each item's shortage is max(0, required - stock). Quantities that are not
valid non-negative numbers count as 0.

Import files are YAML:
  items:
    - name: bolts
      stock: 40
      required: 100

Examples:
  arcade inventory import ./items.yaml
  arcade inventory add washers 10 25
  arcade inventory show --plain`,
}

var inventoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored items and their shortages",
	Args:  cobra.NoArgs,
	Run:   runInventoryShow,
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Replace stored items with the contents of a YAML file",
	Args:  cobra.ExactArgs(1),
	Run:   runInventoryImport,
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add <name> <stock> <required>",
	Short: "Append one item",
	Args:  cobra.ExactArgs(3),
	Run:   runInventoryAdd,
}

func init() {
	inventoryShowCmd.Flags().BoolVar(&flagInventoryPlain, "plain", false, "Print items as plain text")

	inventoryCmd.AddCommand(inventoryShowCmd)
	inventoryCmd.AddCommand(inventoryImportCmd)
	inventoryCmd.AddCommand(inventoryAddCmd)
}

// openInventoryStore opens the database; inventory commands need it.
func openInventoryStore(cmd *cobra.Command) *storage.Store {
	settings, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store
}

func runInventoryShow(cmd *cobra.Command, _ []string) {
	store := openInventoryStore(cmd)
	defer store.Close()

	rows, err := store.LoadInventory()
	if err != nil {
		fail("%v", err)
	}

	if !flagInventoryPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunInventory(rows, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	printInventory(cmd.OutOrStdout(), rows)
}

func printInventory(out io.Writer, rows []storage.InventoryRow) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No items stored.")
		return
	}

	fmt.Fprintf(out, "  %-24s  %10s  %10s  %10s\n", "Product", "Stock", "Required", "Shortage")
	total := 0.0
	for _, r := range tui.InventoryRows(rows) {
		fmt.Fprintf(out, "  %-24s  %10s  %10s  %10s\n", r[0], r[1], r[2], r[3])
	}
	for _, r := range rows {
		total += r.Shortage
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total shortage: %s\n", inventory.FormatQuantity(total))
}

func runInventoryImport(cmd *cobra.Command, args []string) {
	items, err := inventory.LoadFile(args[0])
	if err != nil {
		fail("%v", err)
	}

	store := openInventoryStore(cmd)
	defer store.Close()

	if err := store.SaveInventory(items); err != nil {
		fail("%v", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items, total shortage %s.\n",
		len(items), inventory.FormatQuantity(inventory.TotalShortage(items)))
}

func runInventoryAdd(cmd *cobra.Command, args []string) {
	item := inventory.NewItem(args[0], args[1], args[2])

	store := openInventoryStore(cmd)
	defer store.Close()

	if _, err := store.AddInventoryItem(item); err != nil {
		fail("%v", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s: shortage %s.\n", item.Name, inventory.FormatQuantity(item.Shortage()))
}
