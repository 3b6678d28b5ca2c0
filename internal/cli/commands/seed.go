package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type seedCmd struct{}

func (seedCmd) Name() string        { return "seed" }
func (seedCmd) Description() string { return "Заполнить пустую базу примерными данными" }
func (seedCmd) Usage() string       { return "seed" }

func strp(s string) *string  { return &s }
func qtyp(q float64) *float64 { return &q }

// примерный набор, покрывающий все классы aisle и типы элементов
var seedItems = []api.CreateItemInput{
	{Name: "Bananas", Quantity: qtyp(6), Type: "grocery", Stores: []string{"Trader Joe's"}, Aisle: strp("🥦 Produce"), Tags: []string{"fruit"}},
	{Name: "Greek Yogurt", Quantity: qtyp(2), Unit: "tubs", Type: "grocery", Stores: []string{"Costco", "Trader Joe's"}, Aisle: strp("Dairy"), Tags: []string{"dairy", "breakfast"}},
	{Name: "Milk", Quantity: qtyp(1), Unit: "gal", Type: "grocery", Stores: []string{"Costco"}, Aisle: strp("Dairy"), Tags: []string{"dairy"}},
	{Name: "Sourdough", Quantity: qtyp(1), Type: "grocery", Stores: []string{"Trader Joe's"}, Aisle: strp("Bakery"), Tags: []string{"bread"}},
	{Name: "Pasta", Quantity: qtyp(3), Unit: "boxes", Type: "grocery", Stores: []string{"Target"}, Aisle: strp("12"), Tags: []string{"pantry"}},
	{Name: "Olive Oil", Quantity: qtyp(1), Type: "grocery", Stores: []string{"Costco"}, Aisle: strp("5"), Tags: []string{"pantry"}},
	{Name: "Paper Towels", Quantity: qtyp(1), Unit: "pack", Type: "supply", Stores: []string{"Costco", "Target"}, Tags: []string{"household"}},
	{Name: "Wool Socks", Quantity: qtyp(2), Unit: "pairs", Type: "clothing", Stores: []string{"Target"}},
}

func (seedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	if len(c.Items()) > 0 {
		return fmt.Errorf("database is not empty (%d items), seed aborted", len(c.Items()))
	}
	for _, in := range seedItems {
		if _, err := c.Add(ctx, in); err != nil {
			return fmt.Errorf("seed %q: %w", in.Name, err)
		}
	}
	fmt.Fprintf(Out, "Добавлено примеров: %d\n", len(seedItems))
	return nil
}

func init() { RegisterCmd(seedCmd{}) }
