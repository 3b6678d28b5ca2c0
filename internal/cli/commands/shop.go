package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/engine"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type shopCmd struct{}

func (shopCmd) Name() string { return "shop" }
func (shopCmd) Description() string {
	return "Показать список покупок (pending первыми, skipped в конце)"
}
func (shopCmd) Usage() string { return "shop [-store s] [-sort key]" }

func (shopCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("shop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	store := fs.String("store", "", "магазин (точное членство)")
	sortKey := fs.String("sort", string(engine.SortAisle), "ключ: name|type|store|aisle|dateAdded")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	list := engine.Apply(c.Items(), engine.Filter{Store: *store}, engine.SortKey(*sortKey), engine.ViewShopping)
	if len(list) == 0 {
		fmt.Fprintln(Out, "Список покупок пуст")
		return nil
	}
	printItems(list)
	return nil
}

type buyCmd struct{}

func (buyCmd) Name() string        { return "buy" }
func (buyCmd) Description() string { return "Переключить покупку: pending ⇄ purchased" }
func (buyCmd) Usage() string       { return "buy <id|name> [<id|name> ...]" }

func (buyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return toggleEach(ctx, cfg, args, engine.TogglePurchased)
}

type skipCmd struct{}

func (skipCmd) Name() string        { return "skip" }
func (skipCmd) Description() string { return "Переключить пропуск: pending/purchased → skipped → pending" }
func (skipCmd) Usage() string       { return "skip <id|name> [<id|name> ...]" }

func (skipCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return toggleEach(ctx, cfg, args, engine.ToggleSkipped)
}

// toggleEach применяет переключатель статуса к каждому аргументу по очереди.
func toggleEach(ctx context.Context, cfg *config.Config, args []string, toggle func(model.Item) (model.Patch, error)) error {
	if len(args) == 0 {
		return ErrUsage
	}
	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	for _, arg := range args {
		it, err := resolveItem(c, arg)
		if err != nil {
			return err
		}
		p, err := toggle(it)
		if err != nil {
			return err
		}
		if err := c.Update(ctx, it.ID, p); err != nil {
			return err
		}
		updated, _ := c.Get(it.ID)
		printItem(updated)
	}
	return nil
}

func init() {
	RegisterCmd(shopCmd{})
	RegisterCmd(buyCmd{})
	RegisterCmd(skipCmd{})
}
