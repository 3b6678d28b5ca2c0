package commands

import (
	"context"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/engine"
	"CartKeeper/internal/config"
)

// inc/dec — операции планирования: инкремент добавляет элемент в активный
// список (status=pending), декремент до нуля снимает его (status=null).

type incCmd struct{}

func (incCmd) Name() string        { return "inc" }
func (incCmd) Description() string { return "Увеличить количество (0→1 ставит pending)" }
func (incCmd) Usage() string       { return "inc <id|name>" }

func (incCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	it, err := resolveItem(c, args[0])
	if err != nil {
		return err
	}
	if err := c.Update(ctx, it.ID, engine.IncrementQuantity(it)); err != nil {
		return err
	}
	updated, _ := c.Get(it.ID)
	printItem(updated)
	return nil
}

type decCmd struct{}

func (decCmd) Name() string        { return "dec" }
func (decCmd) Description() string { return "Уменьшить количество (до нуля — снять со списка)" }
func (decCmd) Usage() string       { return "dec <id|name>" }

func (decCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	it, err := resolveItem(c, args[0])
	if err != nil {
		return err
	}
	if err := c.Update(ctx, it.ID, engine.DecrementQuantity(it)); err != nil {
		return err
	}
	updated, _ := c.Get(it.ID)
	printItem(updated)
	return nil
}

func init() {
	RegisterCmd(incCmd{})
	RegisterCmd(decCmd{})
}
