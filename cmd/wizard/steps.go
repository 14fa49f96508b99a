package main

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"javaterra/internal/domain/models"
	"javaterra/internal/pricing"
	"javaterra/internal/wizard"
)

func runWizard(ctx context.Context, in *prompter, ctl *wizard.Controller, catalog pricing.Catalog) error {
	offer, err := ctl.Load()
	if err != nil {
		in.printf("! Gagal membaca draft: %v\n", err)
	}
	if offer.Kind != wizard.ResumeNone {
		accept, err := in.yes(offer.Prompt)
		if err != nil {
			return err
		}
		tr, err := ctl.Resume(accept)
		if err != nil {
			fail(in, tr, err)
		}
	}

	for {
		if ctx.Err() != nil {
			return errQuit
		}
		var err error
		switch ctl.State().Step {
		case wizard.StepTrip:
			err = tripStep(in, ctl, catalog)
		case wizard.StepBiodata:
			err = biodataStep(in, ctl)
		case wizard.StepConfirm:
			err = confirmStep(in, ctl)
		case wizard.StepPayment:
			err = paymentStep(ctx, in, ctl)
		case wizard.StepStatus:
			err = statusStep(in, ctl)
		}
		if err != nil {
			return err
		}
	}
}

func header(in *prompter, step wizard.Step) {
	in.printf("\n=== Langkah %d/%d: %s ===\n", step, wizard.TotalSteps, strings.ToUpper(step.String()))
}

// pick accepts either an option value or its 1-based number in the list.
func pick(opts []pricing.Option, answer string) string {
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(opts) {
		return opts[n-1].Value
	}
	return answer
}

func listOptions(in *prompter, title string, opts []pricing.Option) {
	in.printf("%s:\n", title)
	for i, o := range opts {
		label := o.Label
		if label == "" {
			label = o.Value
		}
		in.printf("  %d) %s\n", i+1, label)
	}
}

func tripStep(in *prompter, ctl *wizard.Controller, catalog pricing.Catalog) error {
	header(in, wizard.StepTrip)
	form := ctl.TripForm()

	listOptions(in, "Keberangkatan", catalog.Departures)
	ans, err := in.ask("Keberangkatan", form.Departure)
	if err != nil {
		return err
	}
	form.Departure = pick(catalog.Departures, ans)

	listOptions(in, "Tujuan", catalog.Destinations)
	if ans, err = in.ask("Tujuan", form.Destination); err != nil {
		return err
	}
	form.Destination = pick(catalog.Destinations, ans)

	if form.Date, err = in.ask("Tanggal (YYYY-MM-DD)", form.Date); err != nil {
		return err
	}
	if form.Time, err = in.ask("Jam (HH:MM)", form.Time); err != nil {
		return err
	}

	listOptions(in, "Tipe bus", catalog.BusTypes)
	if ans, err = in.ask("Tipe bus", form.BusType); err != nil {
		return err
	}
	form.BusType = pick(catalog.BusTypes, ans)

	if ans, err = in.ask("Jumlah tiket", strconv.Itoa(form.Quantity)); err != nil {
		return err
	}
	if n, convErr := strconv.Atoi(ans); convErr == nil && n >= 1 {
		form.Quantity = n
	}

	quote := ctl.UpdateTrip(form)
	for {
		printQuote(in, quote)
		cmd, err := in.ask("[l]anjut, [+]/[-] jumlah, [u]bah, [q] keluar", "l")
		if err != nil {
			return err
		}
		switch cmd {
		case "+":
			quote = ctl.IncreaseQuantity()
		case "-":
			quote = ctl.DecreaseQuantity()
		case "u":
			return nil
		case "q":
			return errQuit
		default:
			tr, err := ctl.SubmitTrip(ctl.TripForm())
			if err != nil {
				fail(in, tr, err)
				return nil
			}
			printTransition(in, tr)
			return nil
		}
	}
}

func printQuote(in *prompter, q pricing.Quote) {
	items := q.LineItems()
	for _, line := range []string{items.Destination, items.Departure, items.Bus} {
		if line != "" {
			in.printf("  %s\n", line)
		}
	}
	in.printf("  Jumlah: %d tiket\n  Total : %s\n", q.Quantity, q.Display())
}

func biodataStep(in *prompter, ctl *wizard.Controller) error {
	header(in, wizard.StepBiodata)
	in.printf("(ketik < untuk kembali)\n")
	bio := ctl.BiodataForm()

	fields := []struct {
		label string
		dst   *string
	}{
		{"Nama lengkap", &bio.FullName},
		{"Tanggal lahir (YYYY-MM-DD)", &bio.BirthDate},
		{"Email", &bio.Email},
		{"Alamat", &bio.Address},
		{"No. telepon", &bio.Phone},
	}
	for _, f := range fields {
		ans, err := in.ask(f.label, *f.dst)
		if err != nil {
			return err
		}
		if ans == "<" {
			return back(in, ctl)
		}
		*f.dst = ans
	}

	tr, err := ctl.SubmitBiodata(bio)
	if err != nil {
		fail(in, tr, err)
		return nil
	}
	printTransition(in, tr)
	return nil
}

func back(in *prompter, ctl *wizard.Controller) error {
	tr, err := ctl.Back()
	if err != nil {
		fail(in, tr, err)
		return nil
	}
	printTransition(in, tr)
	return nil
}

func printBooking(in *prompter, trip models.TripSelection, bio models.Biodata) {
	in.printf("  Rute       : %s -> %s\n", trip.Departure, trip.Destination)
	in.printf("  Jadwal     : %s %s\n", trip.Date, trip.Time)
	in.printf("  Tipe bus   : %s\n", trip.BusType)
	in.printf("  Jumlah     : %d tiket\n", int(trip.Quantity))
	in.printf("  Total      : %s\n", trip.TotalPrice)
	in.printf("  Nama       : %s\n", bio.FullName)
	in.printf("  Lahir      : %s\n", bio.BirthDate)
	in.printf("  Email      : %s\n", bio.Email)
	in.printf("  Alamat     : %s\n", bio.Address)
	in.printf("  Telepon    : %s\n", bio.Phone)
}

func confirmStep(in *prompter, ctl *wizard.Controller) error {
	header(in, wizard.StepConfirm)
	conf, err := ctl.Confirmation()
	if err != nil {
		if errors.Is(err, wizard.ErrDraftMissing) {
			in.printf("! %s\n", wizard.NoticeDraftMissing)
			return nil
		}
		return err
	}
	printBooking(in, conf.Trip, conf.Biodata)

	cmd, err := in.ask("[k]onfirmasi, [<] kembali", "k")
	if err != nil {
		return err
	}
	if cmd == "<" {
		return back(in, ctl)
	}
	tr, err := ctl.Confirm()
	if err != nil {
		fail(in, tr, err)
		return nil
	}
	printTransition(in, tr)
	return nil
}

func paymentStep(ctx context.Context, in *prompter, ctl *wizard.Controller) error {
	header(in, wizard.StepPayment)
	cmd, err := in.ask("[b]ayar & selesaikan booking, [<] kembali", "b")
	if err != nil {
		return err
	}
	if cmd == "<" {
		return back(in, ctl)
	}
	in.printf("%s\n", wizard.NoticeSubmitting)
	tr, err := ctl.Finish(ctx)
	if err != nil {
		fail(in, tr, err)
		return nil
	}
	printTransition(in, tr)
	return nil
}

func statusStep(in *prompter, ctl *wizard.Controller) error {
	header(in, wizard.StepStatus)
	if rc, ok := ctl.Receipt(); ok {
		in.printf("Kode booking: %s\n", rc.BookingID)
		printBooking(in, rc.Trip, rc.Biodata)
	}
	cmd, err := in.ask("[n] booking baru, [q] keluar", "q")
	if err != nil {
		return err
	}
	if cmd != "n" {
		return errQuit
	}
	if err := ctl.StartNew(); err != nil {
		in.printf("! %v\n", err)
	}
	return nil
}
