// Package lifecycle owns estimate status changes, revision drafting and numbering.
package lifecycle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"construction_console/internal/domain/entities"
)

const (
	estimateNumberPrefix = "EST-"
	displayDateLayout    = "02/01/2006"
)

var ErrUnknownStatus = errors.New("unknown estimate status")

var revisionSuffix = regexp.MustCompile(`(-R\d+)+$`)

// DefaultTerms are attached to an estimate saved without terms of its own.
var DefaultTerms = []string{
	"Plinth height up to 18inch from road level up, Foundation up to 5ft. from road level down.",
	"Steel size for above estimate will use 8mm, 10mm, 12mm, 14mm, 16mm. Larger sizes will be extra.",
	"Above rate only covers Masonry, Plaster, Foundation RCC, PCC, Slab, Beam Column RCC Work.",
	"Reti(sand), Kapchit(grit), Red Brick as per standard material available in local market.",
	"Inside 1 coat mala Plaster finish, outside 1 coat Plaster.",
	"All internal walls will be partition wall size, outer walls will be 9\" thick as per drawing.",
	"Landscape, Garden, Terrace Garden, Compound Wall, Gate, balcony railings not included in above rate.",
	"Above all item price GST not included, GST charge extra as per item.",
	"Selection of higher range of material selected by Client will be charged extra.",
	"Drinking Water, Regular use water & Electricity should be provided by client.",
	"FINAL BILL WILL BE ON THE BASIS OF ACTUAL MEASUREMENT AND ACTUAL WORK DONE.",
}

// ParseStatus validates a status string coming from outside the domain.
func ParseStatus(s string) (entities.EstimateStatus, error) {
	st := entities.EstimateStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// Transition moves e to status. Every status is reachable from every other one.
func Transition(e entities.Estimate, status entities.EstimateStatus) (entities.Estimate, error) {
	if !status.IsValid() {
		return e, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	e.Status = status
	return e, nil
}

// NewID allocates an estimate identifier from crypto randomness, falling back to a
// time and random composite when the generator fails.
func NewID(now time.Time) string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return FallbackID(now)
}

func FallbackID(now time.Time) string {
	return "est-" + strconv.FormatUint(rand.Uint64(), 36) + "-" + strconv.FormatInt(now.UnixMilli(), 36)
}

// NewEstimateNumber derives the human-facing number from the last six digits of the
// creation time in milliseconds.
func NewEstimateNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return estimateNumberPrefix + ms
}

// FormatDate renders the display date stored on new estimates.
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// BaseNumber strips every trailing revision suffix from number.
func BaseNumber(number string) string {
	return revisionSuffix.ReplaceAllString(number, "")
}

// PrepareNew stamps identity, number, date and initial state on an estimate that is saved
// for the first time. Fields the caller already set are kept.
func PrepareNew(e entities.Estimate, now time.Time) entities.Estimate {
	if e.ID == "" {
		e.ID = NewID(now)
	}
	if e.EstimateNumber == "" {
		e.EstimateNumber = NewEstimateNumber(now)
	}
	if e.Date == "" {
		e.Date = FormatDate(now)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.Version < 1 {
		e.Version = 1
	}
	if !e.Status.IsValid() {
		e.Status = entities.EstimateStatusPending
	}
	if len(e.Terms) == 0 {
		e.Terms = append([]string(nil), DefaultTerms...)
	}
	return e
}

// Revise drafts the next revision of e. The draft is not persisted.
//
// The draft gets a fresh id and creation time, status Pending, version+1, a "-R<version>"
// suffix on the base number and a parent id pointing at the root of the chain.
// A missing version counts as 1.
func Revise(e entities.Estimate, now time.Time) entities.Estimate {
	draft := e.Clone()

	version := e.Version
	if version < 1 {
		version = 1
	}
	next := version + 1

	draft.ID = NewID(now)
	draft.EstimateNumber = BaseNumber(e.EstimateNumber) + "-R" + strconv.Itoa(next)
	draft.Version = next
	draft.ParentID = e.RootID()
	draft.Status = entities.EstimateStatusPending
	draft.CreatedAt = now
	return draft
}

// Chain returns every estimate of the revision chain rooted at rootID ordered by version.
func Chain(all []entities.Estimate, rootID string) []entities.Estimate {
	out := make([]entities.Estimate, 0)
	for _, e := range all {
		if e.ID == rootID || e.ParentID == rootID {
			out = append(out, e.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Version != out[j].Version {
			return out[i].Version < out[j].Version
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
