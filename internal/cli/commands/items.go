package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/engine"
	"CartKeeper/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать список (планирование) с фильтрами и сортировкой"
}
func (itemsCmd) Usage() string {
	return "items [-search q] [-tags a,b] [-store s] [-type t] [-status st] [-sort key]"
}

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "подстрока: имя, магазины, aisle, теги")
	tags := fs.String("tags", "", "теги через запятую (OR)")
	store := fs.String("store", "", "магазин (точное членство)")
	typ := fs.String("type", "", "тип: grocery|supply|clothing|other")
	status := fs.String("status", "", "статус: pending|purchased|skipped|none")
	sortKey := fs.String("sort", string(engine.SortDateAdded), "ключ: name|type|store|aisle|dateAdded")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}

	f := engine.Filter{
		Search: *search,
		Tags:   splitCSV(*tags),
		Store:  *store,
		Type:   *typ,
		Status: *status,
	}
	list := engine.Apply(c.Items(), f, engine.SortKey(*sortKey), engine.ViewPlanning)
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	printItems(list)
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
