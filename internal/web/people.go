package web

import (
	"context"
	"io"
	"strconv"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/reports"
)

var personForm = []field{
	textField("lastName", "Фамилия"),
	textField("firstName", "Имя"),
	textField("middleName", "Отчество"),
	textField("phone", "Телефон"),
	textField("email", "Email"),
}

func (ctl *Controller) clientSection() section {
	return section{
		title: "Клиенты",
		path:  "/clients",
		filters: []field{
			textField("lastName", "Фамилия"),
			textField("email", "Email"),
			textField("phone", "Телефон"),
		},
		form:    personForm,
		columns: []string{"ID", "Фамилия", "Имя", "Отчество", "Телефон", "Email"},
		list: func(ctx context.Context, q *values) ([]row, error) {
			clients, err := ctl.clients.Search(ctx, models.ClientSearch{
				LastName: q.text("lastName"),
				Email:    q.text("email"),
				Phone:    q.text("phone"),
			})
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(clients))
			for _, cl := range clients {
				rows = append(rows, row{ID: cl.ID, Cells: []string{
					strconv.FormatInt(cl.ID, 10), cl.LastName, cl.FirstName, str(cl.MiddleName), str(cl.Phone), str(cl.Email),
				}})
			}
			return rows, nil
		},
		create: func(ctx context.Context, f *values) error {
			_, err := ctl.clients.Create(ctx, &models.Client{
				FirstName:  f.text("firstName"),
				LastName:   f.text("lastName"),
				MiddleName: f.optional("middleName"),
				Phone:      f.optional("phone"),
				Email:      f.optional("email"),
			})
			return err
		},
		update: ctl.clients.Update,
		remove: ctl.clients.Delete,
	}
}

func (ctl *Controller) realtorSection() section {
	return section{
		title: "Риелторы",
		path:  "/realtors",
		filters: []field{
			textField("lastName", "Фамилия"),
			textField("email", "Email"),
			textField("phone", "Телефон"),
			numberField("minExperience", "Опыт от, лет"),
		},
		form:    append(append([]field{}, personForm...), numberField("experienceYears", "Опыт, лет")),
		columns: []string{"ID", "Фамилия", "Имя", "Отчество", "Телефон", "Email", "Опыт, лет"},
		list: func(ctx context.Context, q *values) ([]row, error) {
			criteria := models.RealtorSearch{
				LastName:      q.text("lastName"),
				Email:         q.text("email"),
				Phone:         q.text("phone"),
				MinExperience: q.int("minExperience"),
			}
			if err := q.err(); err != nil {
				return nil, err
			}
			realtors, err := ctl.realtors.Search(ctx, criteria)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(realtors))
			for _, r := range realtors {
				rows = append(rows, row{ID: r.ID, Cells: []string{
					strconv.FormatInt(r.ID, 10), r.LastName, r.FirstName, str(r.MiddleName), str(r.Phone), str(r.Email),
					strconv.Itoa(r.ExperienceYears),
				}})
			}
			return rows, nil
		},
		create: func(ctx context.Context, f *values) error {
			realtor := &models.Realtor{
				FirstName:       f.text("firstName"),
				LastName:        f.text("lastName"),
				MiddleName:      f.optional("middleName"),
				Phone:           f.optional("phone"),
				Email:           f.optional("email"),
				ExperienceYears: int(f.id("experienceYears")),
			}
			if err := f.err(); err != nil {
				return err
			}
			_, err := ctl.realtors.Create(ctx, realtor)
			return err
		},
		update: ctl.realtors.Update,
		remove: ctl.realtors.Delete,
		report: &report{entity: "realtors", write: func(ctx context.Context, w io.Writer) error {
			realtors, err := ctl.realtors.GetAll(ctx)
			if err != nil {
				return err
			}
			return reports.WriteRealtors(w, realtors)
		}},
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
