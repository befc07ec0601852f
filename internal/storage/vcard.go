// Package storage persists the address book as a vCard 4.0 stream.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// VCardStore loads and saves a whole address book as one .vcf file.
type VCardStore struct {
	Path string
}

// NewVCardStore binds the store to an explicit file path.
func NewVCardStore(path string) *VCardStore {
	return &VCardStore{Path: path}
}

// Load reads the full snapshot. A missing file yields an empty book and no error.
// Cards with no name, invalid phones, bad birthdays or duplicate names are
// skipped (or partially kept) with a warning; a stream that cannot be decoded
// at all is an error.
func (s *VCardStore) Load(ctx context.Context) (*engine.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
	)

	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgBookMissing)
		return engine.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStorageRead, err)
	}
	defer func() { _ = f.Close() }()

	book, err := decodeBook(ctx, f, log)
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgBookLoaded, config.LogKeyRecords, book.Len())
	return book, nil
}

func decodeBook(ctx context.Context, r io.Reader, log *slog.Logger) (*engine.AddressBook, error) {
	book := engine.NewAddressBook()
	decoder := vcard.NewDecoder(r)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		record, err := engine.NewRecord(card.Value(vcard.FieldFormattedName))
		if err != nil {
			log.Warn(config.MsgSkippedName, config.LogKeyError, err)
			continue
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			if err := record.AddPhone(tel); err != nil {
				log.Warn(config.MsgSkippedPhone,
					config.LogKeyName, record.Name().String(),
					config.LogKeyValue, tel,
				)
			}
		}

		if bday := card.Value(vcard.FieldBirthday); bday != "" {
			date, err := parseBDay(bday)
			if err != nil {
				log.Warn(config.MsgSkippedDate,
					config.LogKeyName, record.Name().String(),
					config.LogKeyValue, bday,
				)
			} else {
				record.SetBirthdayDate(engine.BirthdayFromDate(date))
			}
		}

		if err := book.AddRecord(record); err != nil {
			log.Warn(config.MsgSkippedDup,
				config.LogKeyName, record.Name().String(),
				config.LogKeyError, err,
			)
		}
	}
	return book, nil
}

// parseBDay accepts the vCard date layouts that carry a full year.
func parseBDay(value string) (time.Time, error) {
	for _, layout := range []string{config.DateFormatVCard, config.DateFormatVCardBasic} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", value, engine.ErrInvalidBirthday)
}

// Save writes the whole book atomically: encode to a temp file in the same
// directory, fsync, then rename over the target.
func (s *VCardStore) Save(ctx context.Context, book *engine.AddressBook) (err error) {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}
	tmpName := tmp.Name()

	// Remove the temp file on any failure path.
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}
	if err = encodeBook(ctx, tmp, book); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}
	if err = os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyRecords, book.Len(),
	)
	return nil
}

func encodeBook(ctx context.Context, w io.Writer, book *engine.AddressBook) error {
	enc := vcard.NewEncoder(w)
	for _, r := range book.Records() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(recordToCard(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}

func recordToCard(r *engine.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, r.Name().String())
	for _, p := range r.Phones() {
		card.AddValue(vcard.FieldTelephone, p.String())
	}
	if b, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, b.Date().Format(config.DateFormatVCard))
	}
	return card
}
