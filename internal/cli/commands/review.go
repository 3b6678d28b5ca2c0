package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/engine"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type reviewCmd struct{}

func (reviewCmd) Name() string        { return "review" }
func (reviewCmd) Description() string { return "Сводка похода: счётчики по статусам" }
func (reviewCmd) Usage() string       { return "review" }

func (reviewCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	st := engine.Summarize(c.Items())
	fmt.Fprintf(Out, "Всего:     %d\n", st.Total)
	fmt.Fprintf(Out, "pending:   %d\n", st.Pending)
	fmt.Fprintf(Out, "purchased: %d\n", st.Purchased)
	fmt.Fprintf(Out, "skipped:   %d\n", st.Skipped)
	fmt.Fprintf(Out, "без статуса: %d\n", st.None)
	return nil
}

type completeCmd struct{}

func (completeCmd) Name() string { return "complete" }
func (completeCmd) Description() string {
	return "Завершить покупки: снять со списка все purchased-элементы"
}
func (completeCmd) Usage() string { return "complete" }

func (completeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return clearWhere(ctx, cfg, func(it model.Item) bool {
		return it.HasStatus(model.StatusPurchased)
	})
}

type resetCmd struct{}

func (resetCmd) Name() string { return "reset" }
func (resetCmd) Description() string {
	return "Сбросить список покупок: снять статус со всех элементов"
}
func (resetCmd) Usage() string { return "reset" }

func (resetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return clearWhere(ctx, cfg, func(it model.Item) bool {
		return it.Status != nil
	})
}

// clearWhere снимает статус (с обнулением количества) у всех элементов,
// прошедших предикат; по одному независимому запросу на элемент.
func clearWhere(ctx context.Context, cfg *config.Config, match func(model.Item) bool) error {
	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	var ids []string
	for _, it := range c.Items() {
		if match(it) {
			ids = append(ids, it.ID)
		}
	}
	if len(ids) == 0 {
		fmt.Fprintln(Out, "Нечего сбрасывать")
		return nil
	}
	if err := c.BulkUpdate(ctx, ids, engine.ClearPatch()); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Снято со списка: %d\n", len(ids))
	return nil
}

func init() {
	RegisterCmd(reviewCmd{})
	RegisterCmd(completeCmd{})
	RegisterCmd(resetCmd{})
}
