package commands

import (
	"context"
	"fmt"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/config"
)

type rmCmd struct{}

func (rmCmd) Name() string { return "rm" }
func (rmCmd) Description() string {
	return "Удалить один или несколько элементов (независимые параллельные запросы)"
}
func (rmCmd) Usage() string { return "rm <id|name> [<id|name> ...]" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	ids, err := resolveIDs(c, args)
	if err != nil {
		return err
	}
	if len(ids) == 1 {
		if err := c.Delete(ctx, ids[0]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Deleted: 1")
		return nil
	}
	if err := c.BulkDelete(ctx, ids); err != nil {
		// часть запросов могла пройти; сообщаем, что осталось
		fmt.Fprintf(Out, "Осталось элементов: %d\n", len(c.Items()))
		return err
	}
	fmt.Fprintf(Out, "Deleted: %d\n", len(ids))
	return nil
}

func init() { RegisterCmd(rmCmd{}) }
