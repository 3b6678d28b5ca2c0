package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"CartKeeper/internal/cli/api"
	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить элемент в мастер-список"
}
func (addCmd) Usage() string {
	return "add <name> [-qty n] [-unit u] [-type t] [-stores a,b] [-aisle x] [-tags a,b]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return ErrUsage
	}
	name := args[0]

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	qty := fs.Float64("qty", 1, "количество")
	unit := fs.String("unit", "", "единица измерения")
	typ := fs.String("type", "grocery", "тип: grocery|supply|clothing|other")
	stores := fs.String("stores", "", "магазины через запятую")
	aisle := fs.String("aisle", "", "ряд/отдел магазина")
	tags := fs.String("tags", "", "теги через запятую")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}

	in := api.CreateItemInput{
		Name:     name,
		Quantity: qty,
		Unit:     *unit,
		Type:     *typ,
		Stores:   splitCSV(*stores),
		Tags:     splitCSV(*tags),
	}
	if *aisle != "" {
		in.Aisle = aisle
	}
	it, err := c.Add(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(*it)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
