package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/safewalk/internal/client/client"
	"github.com/dmitrijs2005/safewalk/internal/client/models"
)

func (a *App) Contacts(ctx context.Context, _ []string) error {
	list, err := a.api.ListContacts(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No emergency contacts yet, use 'addcontact'")
		return nil
	}
	for _, c := range list {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

func (a *App) AddContact(ctx context.Context, _ []string) error {
	name, err := GetSimpleText(a.in, "Name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.in, "Phone", a.out)
	if err != nil {
		return err
	}
	rel, err := GetSimpleText(a.in, "Relationship (Family, Friend, Security, Other; empty for Friend)", a.out)
	if err != nil {
		return err
	}

	c, err := a.api.AddContact(ctx, name, phone, rel)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Added", c)
	return nil
}

func (a *App) findContact(ctx context.Context, id int64) (models.Contact, error) {
	list, err := a.api.ListContacts(ctx)
	if err != nil {
		return models.Contact{}, err
	}
	for _, c := range list {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, fmt.Errorf("%w: contact %d", client.ErrNotFound, id)
}

func (a *App) EditContact(ctx context.Context, args []string) error {
	id, err := parseID(args, "editcontact <id>")
	if err != nil {
		return err
	}

	c, err := a.findContact(ctx, id)
	if err != nil {
		return err
	}

	if c.Name, err = GetTextWithDefault(a.in, "Name", c.Name, a.out); err != nil {
		return err
	}
	if c.Phone, err = GetTextWithDefault(a.in, "Phone", c.Phone, a.out); err != nil {
		return err
	}
	if c.Relationship, err = GetTextWithDefault(a.in, "Relationship", c.Relationship, a.out); err != nil {
		return err
	}

	updated, err := a.api.UpdateContact(ctx, c)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated", updated)
	return nil
}

func (a *App) RemoveContact(ctx context.Context, args []string) error {
	id, err := parseID(args, "rmcontact <id>")
	if err != nil {
		return err
	}
	if err := a.api.RemoveContact(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed contact #%d\n", id)
	return nil
}
