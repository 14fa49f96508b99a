// Command wizard is a terminal front end for the booking wizard and the
// booking search, talking to the javaterra backend over HTTP.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"javaterra/internal/client"
	intconfig "javaterra/internal/config"
	"javaterra/internal/drafts"
	"javaterra/internal/pricing"
	"javaterra/internal/search"
	"javaterra/internal/wizard"

	"github.com/google/uuid"
)

func main() {
	env := intconfig.LoadEnv()

	var (
		baseURL   = flag.String("api", env.APIBaseURL, "booking backend base URL")
		draftFile = flag.String("drafts", env.DraftFile, "draft file (ignored when DRAFT_REDIS_ADDR is set)")
		session   = flag.String("session", "", "session id for redis-backed drafts (default: new uuid)")
		searchFor = flag.String("search", "", "search bookings by passenger name and exit")
		history   = flag.Bool("history", false, "interactive booking search")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(client.Options{BaseURL: *baseURL})
	in := newPrompter(bufio.NewReader(os.Stdin), os.Stdout)

	if *searchFor != "" || *history {
		flow := search.NewFlow(api)
		if *searchFor != "" {
			printSearch(in, flow.Search(ctx, *searchFor))
			return
		}
		runHistory(ctx, in, flow)
		return
	}

	catalog := pricing.DefaultCatalog()
	if env.CatalogFile != "" {
		c, err := pricing.LoadCatalog(env.CatalogFile)
		if err != nil {
			log.Fatalf("Gagal memuat katalog: %v", err)
		}
		catalog = c
	}

	sessionID := *session
	var kv drafts.KV
	if env.DraftRedisAddr != "" {
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		rkv, err := drafts.NewRedisKV(drafts.RedisOptions{
			Addr:     env.DraftRedisAddr,
			Password: env.DraftRedisPassword,
			DB:       env.DraftRedisDB,
			Prefix:   env.DraftRedisPrefix + ":" + sessionID,
			TTL:      env.DraftRedisTTL,
		})
		if err != nil {
			log.Fatalf("Gagal konek ke redis: %v", err)
		}
		defer rkv.Close()
		kv = rkv
		in.printf("Sesi: %s\n", sessionID)
	} else {
		kv = drafts.NewFileKV(*draftFile)
	}

	ctl := wizard.New(drafts.NewStore(kv), api, catalog, wizard.WithSessionID(sessionID))
	if err := runWizard(ctx, in, ctl, catalog); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, io.EOF) {
		log.Fatalf("wizard: %v", err)
	}
}

func runHistory(ctx context.Context, in *prompter, flow *search.Flow) {
	for {
		name, err := in.ask("Nama pemesan (kosong untuk keluar)", "")
		if err != nil || name == "" {
			return
		}
		printSearch(in, flow.Search(ctx, name))
	}
}

func printSearch(in *prompter, res search.Result) {
	switch res.Kind {
	case search.KindFound:
		in.printf("\n%s\n", res.Message)
		for i, e := range res.Entries {
			in.printf("\nBooking #%d  %s\n", i+1, e.BookingID)
			in.printf("  Nama       : %s\n", e.FullName)
			in.printf("  Rute       : %s\n", e.Route())
			in.printf("  Tanggal    : %s\n", e.Schedule())
			in.printf("  Tipe Bus   : %s\n", e.BusType)
			in.printf("  Jumlah     : %d tiket\n", e.Quantity)
			in.printf("  Total      : %s\n", e.TotalPrice)
			in.printf("  Status     : %s\n", e.StatusLabel)
			in.printf("  Pembayaran : %s\n", e.PaymentLabel)
		}
		in.printf("\n")
	case search.KindNotFound:
		in.printf("%s\n%s\n", res.Message, search.MsgContactCS)
	default:
		in.printf("%s\n", res.Message)
	}
}

func printTransition(in *prompter, tr wizard.Transition) {
	if tr.Notice != "" {
		in.printf("! %s\n", tr.Notice)
	}
	if tr.Moved() {
		in.printf("-> Langkah %d/%d (%s)\n", tr.To, wizard.TotalSteps, tr.To)
	}
}

func fail(in *prompter, tr wizard.Transition, err error) {
	printTransition(in, tr)
	if tr.Notice == "" && err != nil {
		in.printf("! %v\n", err)
	}
}

var errQuit = errors.New("quit")
