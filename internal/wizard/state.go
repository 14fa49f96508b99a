package wizard

import (
	"errors"

	"javaterra/internal/domain/models"
)

// Step is one screen of the booking wizard.
type Step int

const (
	StepTrip    Step = 1 // pilih perjalanan
	StepBiodata Step = 2
	StepConfirm Step = 3
	StepPayment Step = 4
	StepStatus  Step = 5
)

// TotalSteps is the number of wizard screens.
const TotalSteps = 5

func (s Step) String() string {
	switch s {
	case StepTrip:
		return "booking"
	case StepBiodata:
		return "biodata"
	case StepConfirm:
		return "konfirmasi"
	case StepPayment:
		return "pembayaran"
	case StepStatus:
		return "status"
	default:
		return "unknown"
	}
}

// State is the process-local wizard state. It is never persisted; Submitting
// and Completed together form the submission guard.
type State struct {
	Step       Step
	Submitting bool
	Completed  bool
}

// Transition describes what a single input did to the wizard.
// Notice is the message to show the user, if any.
type Transition struct {
	From    Step
	To      Step
	Notice  string
	Reasons []string
}

// Moved reports whether the wizard changed screens.
func (t Transition) Moved() bool { return t.From != t.To }

var (
	ErrWrongStep        = errors.New("wizard: action not available on this step")
	ErrSubmitInProgress = errors.New("wizard: submission already in progress")
	ErrBookingCompleted = errors.New("wizard: booking already completed")
	ErrBackFromFinal    = errors.New("wizard: cannot go back from the final step")
	ErrDraftMissing     = errors.New("wizard: draft missing")
)

// User-facing notices.
const (
	NoticeSubmitting     = "Sedang memproses booking... Mohon tunggu."
	NoticeCompleted      = "Booking sudah selesai! Silakan refresh halaman untuk booking baru."
	NoticeBackFromFinal  = `Booking sudah selesai! Gunakan tombol "Ke Beranda" atau "Booking Baru".`
	NoticeDraftMissing   = "Data tidak lengkap! Kembali ke awal."
	NoticeRestart        = "Data tidak lengkap! Silakan mulai dari awal."
	NoticeSubmitFailed   = "Gagal menyimpan booking. Silakan coba lagi."
	NoticeSaveFailed     = "Gagal menyimpan data. Silakan coba lagi."
	NoticeResumeTrip     = "Anda memiliki booking yang belum selesai. Lanjutkan?"
	NoticeResumeBiodata  = "Anda sedang di tengah proses booking. Lanjutkan ke biodata?"
	NoticeBookingSuccess = "Booking berhasil dibuat!"
)

// Confirmation is the read-only step-3 view, read back from the drafts.
type Confirmation struct {
	Trip    models.TripSelection
	Biodata models.Biodata
}

// Receipt is the step-5 summary, built from the in-memory copies taken at
// submission time because storage is cleared on success.
type Receipt struct {
	BookingID string
	Trip      models.TripSelection
	Biodata   models.Biodata
}

// ResumeKind is what a page load found in the draft store.
type ResumeKind int

const (
	ResumeNone ResumeKind = iota
	ResumeTrip
	ResumeTripAndBiodata
)

// ResumeOffer is the prompt shown on load when a draft exists.
type ResumeOffer struct {
	Kind    ResumeKind
	Prompt  string
	Trip    models.TripSelection
	Biodata models.Biodata
}
