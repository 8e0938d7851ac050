// Package cmd - quote command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"warequote/core/container"
	"warequote/core/output"
	"warequote/core/quote"
	"warequote/core/rules"
	"warequote/core/storage"
	"warequote/core/transport"
)

var outputFormat string

// quoteCmd groups the one-shot quote subcommands
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Produce a one-shot quote for a single service",
}

var (
	storageType     string
	storageLength   float64
	storageWidth    float64
	storageHeight   float64
	storageWeeks    int
	storageQuantity int
	storageDG       bool
)

var quoteStorageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Quote a storage job",
	RunE:  runQuoteStorage,
}

var (
	transportMode    string
	transportFrom    string
	transportTo      string
	transportVehicle string
	transportHours   int
	transportSize    string
	transportReturn  bool
	transportDG      bool
)

var quoteTransportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Quote a transport job",
	RunE:  runQuoteTransport,
}

var (
	containerSize       string
	containerItems      int
	containerPersonal   bool
	containerDG         bool
	containerFumigation bool
	containerHandling   []string
	containerCartons    int
	containerBubble     int
	containerTape       int
	containerBlankets   int
)

var quoteContainerCmd = &cobra.Command{
	Use:   "container",
	Short: "Quote a container packing job",
	RunE:  runQuoteContainer,
}

func init() {
	quoteCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")

	quoteStorageCmd.Flags().StringVarP(&storageType, "type", "t", "standard", "storage type")
	quoteStorageCmd.Flags().Float64Var(&storageLength, "length", 0, "item length in metres")
	quoteStorageCmd.Flags().Float64Var(&storageWidth, "width", 0, "item width in metres")
	quoteStorageCmd.Flags().Float64Var(&storageHeight, "height", 0, "item height in metres")
	quoteStorageCmd.Flags().IntVarP(&storageWeeks, "weeks", "w", 1, "storage duration in weeks")
	quoteStorageCmd.Flags().IntVarP(&storageQuantity, "quantity", "q", 1, "item/pallet quantity")
	quoteStorageCmd.Flags().BoolVar(&storageDG, "dg", false, "dangerous goods")

	quoteTransportCmd.Flags().StringVarP(&transportMode, "mode", "m", "", "transport mode override (container)")
	quoteTransportCmd.Flags().StringVar(&transportFrom, "from", "", "pickup postcode")
	quoteTransportCmd.Flags().StringVar(&transportTo, "to", "", "delivery postcode")
	quoteTransportCmd.Flags().StringVar(&transportVehicle, "vehicle", "", "vehicle type (van, truck, semi)")
	quoteTransportCmd.Flags().IntVar(&transportHours, "hours", 0, "estimated local job hours")
	quoteTransportCmd.Flags().StringVar(&transportSize, "size", "", "container size (20ft, 40ft)")
	quoteTransportCmd.Flags().BoolVar(&transportReturn, "return", false, "return journey")
	quoteTransportCmd.Flags().BoolVar(&transportDG, "dg", false, "dangerous goods")

	quoteContainerCmd.Flags().StringVar(&containerSize, "size", "20ft", "container size (20ft, 40ft)")
	quoteContainerCmd.Flags().IntVar(&containerItems, "items", 0, "item count")
	quoteContainerCmd.Flags().BoolVar(&containerPersonal, "personal", false, "personal effects")
	quoteContainerCmd.Flags().BoolVar(&containerDG, "dg", false, "dangerous goods")
	quoteContainerCmd.Flags().BoolVar(&containerFumigation, "fumigation", false, "fumigation required")
	quoteContainerCmd.Flags().StringSliceVar(&containerHandling, "handling", nil, "special handling tags")
	quoteContainerCmd.Flags().IntVar(&containerCartons, "cartons", 0, "cartons")
	quoteContainerCmd.Flags().IntVar(&containerBubble, "bubble-wrap", 0, "bubble wrap metres")
	quoteContainerCmd.Flags().IntVar(&containerTape, "tape", 0, "tape rolls")
	quoteContainerCmd.Flags().IntVar(&containerBlankets, "blankets", 0, "furniture blankets")

	quoteCmd.AddCommand(quoteStorageCmd)
	quoteCmd.AddCommand(quoteTransportCmd)
	quoteCmd.AddCommand(quoteContainerCmd)
}

func renderQuote(result *quote.QuoteResult) error {
	formatter, err := output.New(output.Format(outputFormat))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}

func runQuoteStorage(cmd *cobra.Command, args []string) error {
	table, err := loadRates()
	if err != nil {
		return err
	}

	req := quote.StorageRequest{
		StorageType: quote.StorageType(storageType),
		Dimensions: quote.Dimensions{
			Length: decimal.NewFromFloat(storageLength),
			Width:  decimal.NewFromFloat(storageWidth),
			Height: decimal.NewFromFloat(storageHeight),
		},
		DurationWeeks:     storageWeeks,
		Quantity:          storageQuantity,
		HasDangerousGoods: storageDG,
	}

	result := storage.NewCalculator(table).Calculate(req)
	appendRuleMessages(result, rules.ValidationContext{
		Services:             []quote.ServiceType{quote.ServiceStorage},
		HasDangerousGoods:    storageDG,
		StorageDurationWeeks: storageWeeks,
	})
	return renderQuote(result)
}

func runQuoteTransport(cmd *cobra.Command, args []string) error {
	table, err := loadRates()
	if err != nil {
		return err
	}

	req := quote.TransportRequest{
		TransportType:    quote.TransportType(transportMode),
		FromPostcode:     transportFrom,
		ToPostcode:       transportTo,
		ContainerSize:    quote.ContainerSize(transportSize),
		DurationHours:    transportHours,
		VehicleType:      transportVehicle,
		IsDangerousGoods: transportDG,
		ReturnJourney:    transportReturn,
	}

	result, err := transport.NewCalculator(table).Calculate(req)
	if err != nil {
		return err
	}
	appendRuleMessages(result, rules.ValidationContext{
		Services:          []quote.ServiceType{quote.ServiceTransport},
		HasDangerousGoods: transportDG,
	})
	return renderQuote(result)
}

func runQuoteContainer(cmd *cobra.Command, args []string) error {
	table, err := loadRates()
	if err != nil {
		return err
	}

	req := quote.ContainerRequest{
		ContainerSize:      quote.ContainerSize(containerSize),
		IsPersonalEffects:  containerPersonal,
		ItemCount:          containerItems,
		HasDangerousGoods:  containerDG,
		RequiresFumigation: containerFumigation,
		SpecialHandling:    containerHandling,
	}
	if containerCartons+containerBubble+containerTape+containerBlankets > 0 {
		req.Materials = &quote.PackingMaterials{
			Cartons:          containerCartons,
			BubbleWrapMetres: containerBubble,
			TapeRolls:        containerTape,
			Blankets:         containerBlankets,
		}
	}

	result := container.NewCalculator(table).Calculate(req)
	appendRuleMessages(result, rules.ValidationContext{
		Services:          []quote.ServiceType{quote.ServiceContainerPacking},
		HasDangerousGoods: containerDG,
		IsPersonalEffects: containerPersonal,
	})
	return renderQuote(result)
}

func appendRuleMessages(result *quote.QuoteResult, ctx rules.ValidationContext) {
	engine := rules.NewEngine()
	for _, msg := range engine.Messages(ctx) {
		result.AddMessage(msg)
	}
	for _, q := range engine.ClarifyingQuestions(ctx) {
		result.AddQuestion(q)
	}
}
