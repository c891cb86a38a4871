/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/menu-record-service/pkg/menu"
	"github.com/NVIDIA/menu-record-service/pkg/serializer"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all menu items",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			items, err := c.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list menu items: %w", err)
			}

			return writeResult(ctx, cmd, items)
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show a single menu item",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireID(cmd)
			if err != nil {
				return err
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			item, err := c.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get menu item %s: %w", id, err)
			}

			return writeResult(ctx, cmd, item)
		},
	}
}

func createCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a menu item",
		Description: `Create a menu item from flags or from a JSON/YAML file:

  menuctl create --name Burger --price 9.99 --description "Beef patty"
  menuctl create --file burger.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Item name (required)",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Item description",
			},
			&cli.FloatFlag{
				Name:  "price",
				Usage: "Item price (required, 0 is valid)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a JSON or YAML file holding the item; other item flags are ignored",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			n, err := newItemFromCmd(cmd)
			if err != nil {
				return err
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			item, err := c.Create(ctx, *n)
			if err != nil {
				return fmt.Errorf("failed to create menu item: %w", err)
			}

			return writeResult(ctx, cmd, menu.ItemResponse{Message: menu.MsgCreated, Data: item})
		},
	}
}

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update fields of a menu item",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "New item name",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "New item description",
			},
			&cli.FloatFlag{
				Name:  "price",
				Usage: "New item price",
			},
			&cli.BoolFlag{
				Name:  "clear-description",
				Usage: "Remove the description",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireID(cmd)
			if err != nil {
				return err
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			item, err := c.Update(ctx, id, patchFromCmd(cmd))
			if err != nil {
				return fmt.Errorf("failed to update menu item %s: %w", id, err)
			}

			return writeResult(ctx, cmd, menu.ItemResponse{Message: menu.MsgUpdated, Data: item})
		},
	}
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a menu item",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireID(cmd)
			if err != nil {
				return err
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := c.Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete menu item %s: %w", id, err)
			}

			return writeResult(ctx, cmd, menu.MessageResponse{Message: menu.MsgDeleted})
		},
	}
}

func requireID(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one menu item id, got %d arguments", cmd.Args().Len())
	}
	return cmd.Args().First(), nil
}

// newItemFromCmd builds a create request from --file or the item flags and
// validates it locally before sending.
func newItemFromCmd(cmd *cli.Command) (*menu.NewItem, error) {
	if path := cmd.String("file"); path != "" {
		n, err := serializer.FromFile[menu.NewItem](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load menu item from %q: %w", path, err)
		}
		return n, menu.ValidateNew(*n)
	}

	n := &menu.NewItem{
		Name:        cmd.String("name"),
		Description: cmd.String("description"),
	}
	if cmd.IsSet("price") {
		n.Price = ptr.To(cmd.Float("price"))
	}

	return n, menu.ValidateNew(*n)
}

// patchFromCmd builds a patch from the flags that were set.
func patchFromCmd(cmd *cli.Command) menu.Patch {
	var p menu.Patch
	if cmd.IsSet("name") {
		p.Name = ptr.To(cmd.String("name"))
	}
	if cmd.IsSet("description") {
		p.Description = ptr.To(cmd.String("description"))
	}
	if cmd.IsSet("price") {
		p.Price = ptr.To(cmd.Float("price"))
	}
	p.ClearDescription = cmd.Bool("clear-description")
	return p
}
