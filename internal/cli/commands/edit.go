package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"CartKeeper/internal/cli/bootstrap"
	"CartKeeper/internal/cli/model"
	"CartKeeper/internal/config"
)

type editCmd struct{}

func (editCmd) Name() string { return "edit" }
func (editCmd) Description() string {
	return "Изменить поля элемента; значение \"-\" очищает aisle, статус \"none\" снимает элемент со списка"
}
func (editCmd) Usage() string {
	return "edit <id|name> [-name n] [-qty n] [-unit u] [-type t] [-status st] [-stores a,b] [-aisle x|-] [-tags a,b]"
}

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	target := args[0]

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "новое имя")
	qty := fs.Float64("qty", 0, "количество")
	unit := fs.String("unit", "", "единица измерения")
	typ := fs.String("type", "", "тип")
	status := fs.String("status", "", "статус: pending|purchased|skipped|none")
	stores := fs.String("stores", "", "магазины через запятую")
	aisle := fs.String("aisle", "", "ряд; \"-\" очищает")
	tags := fs.String("tags", "", "теги через запятую")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	// в patch попадают только явно переданные флаги: отсутствующий ключ
	// сервер не трогает
	patch := model.Patch{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch["name"] = *name
		case "qty":
			patch["quantity"] = *qty
		case "unit":
			patch["unit"] = *unit
		case "type":
			patch["type"] = *typ
		case "status":
			if *status == "none" {
				patch["status"] = nil
			} else {
				patch["status"] = *status
			}
		case "stores":
			patch["stores"] = splitCSV(*stores)
		case "aisle":
			if *aisle == "-" {
				patch["aisle"] = nil
			} else {
				patch["aisle"] = *aisle
			}
		case "tags":
			patch["tags"] = splitCSV(*tags)
		}
	})
	if len(patch) == 0 {
		return ErrUsage
	}

	c, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	it, err := resolveItem(c, target)
	if err != nil {
		return err
	}
	if err := c.Update(ctx, it.ID, patch); err != nil {
		return err
	}
	updated, _ := c.Get(it.ID)
	fmt.Fprintln(Out, "Updated:")
	printItem(updated)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
