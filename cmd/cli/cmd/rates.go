// Package cmd - rates command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"warequote/core/money"
	"warequote/core/quote"
)

// ratesCmd prints the active rate tables
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the active rate tables",
	RunE:  runRates,
}

func runRates(cmd *cobra.Command, args []string) error {
	table, err := loadRates()
	if err != nil {
		return err
	}

	fmt.Println("Storage:")
	for _, t := range []quote.StorageType{
		quote.StorageStandard, quote.StorageClimateControlled, quote.StorageHazardous,
		quote.StoragePallet, quote.StorageFloorSpace,
	} {
		entry, ok := table.Storage[t]
		if !ok {
			continue
		}
		fmt.Printf("  %-28s %10s per %-10s min %s\n",
			entry.DisplayName, money.Format(entry.Rate), entry.Unit, money.Format(entry.MinCharge))
	}

	fmt.Println("Vehicles:")
	for _, v := range []string{"van", "truck", "semi"} {
		entry, ok := table.Vehicles[v]
		if !ok {
			continue
		}
		fmt.Printf("  %-28s %10s/hour %10s/km\n",
			entry.DisplayName, money.Format(entry.Hourly), money.Format(entry.PerKm))
	}

	fmt.Println("Container transport:")
	for _, size := range []quote.ContainerSize{quote.Container20ft, quote.Container40ft} {
		fmt.Printf("  %-28s %10s base %10s terminal\n",
			size, money.Format(table.ContainerTransportBase[size]), money.Format(table.TerminalFee[size]))
	}

	fmt.Println("Container packing:")
	for _, size := range []quote.ContainerSize{quote.Container20ft, quote.Container40ft} {
		fmt.Printf("  %-28s %10s commercial %10s personal effects\n",
			size, money.Format(table.PackingCommercial[size]), money.Format(table.PackingPersonal[size]))
	}

	fmt.Printf("Surcharges: local fuel %s%%, long haul fuel %s%%, container fuel %s%%, road toll %s\n",
		table.LocalFuelPct, table.LongHaulFuelPct, table.ContainerFuelPct, money.Format(table.RoadToll))
	return nil
}
