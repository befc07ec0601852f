package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// Dispatcher routes parsed commands to the address book.
// Every failure is turned into a reply here; the engine never prints.
type Dispatcher struct {
	Book     *engine.AddressBook
	Clock    engine.Clock
	Messages *Messages
	Calendar *engine.CalendarGenerator

	// ReminderTrigger is passed to the calendar export ("" disables alarms).
	ReminderTrigger string
}

// NewDispatcher wires a dispatcher whose calendar titles come from the message catalog.
func NewDispatcher(book *engine.AddressBook, clock engine.Clock, msgs *Messages, reminderTrigger string) *Dispatcher {
	d := &Dispatcher{
		Book:            book,
		Clock:           clock,
		Messages:        msgs,
		ReminderTrigger: reminderTrigger,
	}
	d.Calendar = &engine.CalendarGenerator{
		Clock:         clock,
		FormatSummary: d.formatSummary,
	}
	return d
}

// Execute runs one command and returns the reply and whether the session should end.
func (d *Dispatcher) Execute(ctx context.Context, cmd string, args []string) (string, bool) {
	log := slog.With(
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, cmd,
	)
	log.Debug(config.MsgCommand, config.LogKeyArgs, len(args))

	var (
		reply string
		err   error
	)

	switch cmd {
	case config.CmdClose, config.CmdExit:
		return d.Messages.Get(config.TKeyGoodbye), true
	case config.CmdHello:
		reply = d.Messages.Get(config.TKeyHello)
	case config.CmdAdd:
		reply, err = d.addContact(args)
	case config.CmdChange:
		reply, err = d.changeContact(args)
	case config.CmdPhone:
		reply, err = d.showPhone(args)
	case config.CmdAll:
		reply = d.showAll()
	case config.CmdAddBirthday:
		reply, err = d.addBirthday(args)
	case config.CmdShowBirthday:
		reply, err = d.showBirthday(args)
	case config.CmdBirthdays:
		reply = d.birthdays()
	case config.CmdDelete:
		reply, err = d.deleteContact(args)
	case config.CmdRemovePhone:
		reply, err = d.removePhone(args)
	case config.CmdExportCal:
		reply, err = d.exportCalendar(ctx, args)
	default:
		reply = d.Messages.Get(config.TKeyInvalidCmd)
	}

	if err != nil {
		log.Debug(config.MsgCommandFailed, config.LogKeyError, err)
		return d.errorReply(err), false
	}
	return reply, false
}

// errorReply converts an error into catalog text.
func (d *Dispatcher) errorReply(err error) string {
	var argsErr *ArgsError
	switch {
	case errors.As(err, &argsErr):
		return d.Messages.Format(config.TKeyUsage, map[string]any{"Usage": argsErr.Usage})
	case errors.Is(err, engine.ErrEmptyName):
		return d.Messages.Get(config.TKeyErrName)
	case errors.Is(err, engine.ErrInvalidPhone):
		return d.Messages.Get(config.TKeyErrPhone)
	case errors.Is(err, engine.ErrInvalidBirthday):
		return d.Messages.Get(config.TKeyErrBirthday)
	default:
		slog.Error(config.MsgCommandFailed,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, err,
		)
		return d.Messages.Get(config.TKeyErrUnexpected)
	}
}

func (d *Dispatcher) contactNotFound(name string) string {
	return d.Messages.Format(config.TKeyContactNotFound, map[string]any{"Name": name})
}

func (d *Dispatcher) phoneNotFound(phone string) string {
	return d.Messages.Format(config.TKeyPhoneNotFound, map[string]any{"Phone": phone})
}

// addContact creates the record if needed and adds the optional phone.
// A new record is only stored once its phone validated, so a bad phone changes nothing.
func (d *Dispatcher) addContact(args []string) (string, error) {
	if err := requireArgs(args, 1, config.UsageAdd); err != nil {
		return "", err
	}
	name := args[0]

	record, exists := d.Book.Find(name)
	if !exists {
		var err error
		if record, err = engine.NewRecord(name); err != nil {
			return "", err
		}
	}

	if len(args) > 1 {
		phone := args[1]
		if _, found := record.FindPhone(phone); found {
			return d.Messages.Get(config.TKeyPhoneExists), nil
		}
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
	}

	if exists {
		return d.Messages.Get(config.TKeyContactUpdated), nil
	}
	if err := d.Book.AddRecord(record); err != nil {
		return "", err
	}
	return d.Messages.Get(config.TKeyContactAdded), nil
}

// changeContact checks the name and the old phone before editing.
func (d *Dispatcher) changeContact(args []string) (string, error) {
	if err := requireArgs(args, 3, config.UsageChange); err != nil {
		return "", err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := d.Book.Find(name)
	if !ok {
		return d.contactNotFound(name), nil
	}
	if _, found := record.FindPhone(oldPhone); !found {
		return d.phoneNotFound(oldPhone), nil
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return d.Messages.Get(config.TKeyContactUpdated), nil
}

func (d *Dispatcher) showPhone(args []string) (string, error) {
	if err := requireArgs(args, 1, config.UsagePhone); err != nil {
		return "", err
	}
	record, ok := d.Book.Find(args[0])
	if !ok {
		return d.contactNotFound(args[0]), nil
	}
	if len(record.Phones()) == 0 {
		return d.Messages.Format(config.TKeyNoPhones, map[string]any{"Name": args[0]}), nil
	}
	return record.PhoneList(), nil
}

func (d *Dispatcher) showAll() string {
	records := d.Book.Records()
	if len(records) == 0 {
		return d.Messages.Get(config.TKeyNoContacts)
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) addBirthday(args []string) (string, error) {
	if err := requireArgs(args, 2, config.UsageAddBirthday); err != nil {
		return "", err
	}
	record, ok := d.Book.Find(args[0])
	if !ok {
		return d.contactNotFound(args[0]), nil
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return d.Messages.Get(config.TKeyBirthdayAdded), nil
}

func (d *Dispatcher) showBirthday(args []string) (string, error) {
	if err := requireArgs(args, 1, config.UsageShowBirthday); err != nil {
		return "", err
	}
	record, ok := d.Book.Find(args[0])
	if !ok {
		return d.contactNotFound(args[0]), nil
	}
	b, ok := record.Birthday()
	if !ok {
		return d.Messages.Format(config.TKeyNoBirthday, map[string]any{"Name": args[0]}), nil
	}
	return b.String(), nil
}

func (d *Dispatcher) birthdays() string {
	upcoming := d.Book.UpcomingBirthdays(d.Clock.Now())
	if len(upcoming) == 0 {
		return d.Messages.Get(config.TKeyNoUpcoming)
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = d.Messages.Format(config.TKeyUpcomingEntry, map[string]any{
			"Name": u.Name,
			"Date": u.CongratulationDate,
		})
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) deleteContact(args []string) (string, error) {
	if err := requireArgs(args, 1, config.UsageDelete); err != nil {
		return "", err
	}
	if err := d.Book.Delete(args[0]); err != nil {
		if engine.IsNotFound(err) {
			return d.contactNotFound(args[0]), nil
		}
		return "", err
	}
	return d.Messages.Get(config.TKeyContactDeleted), nil
}

func (d *Dispatcher) removePhone(args []string) (string, error) {
	if err := requireArgs(args, 2, config.UsageRemovePhone); err != nil {
		return "", err
	}
	record, ok := d.Book.Find(args[0])
	if !ok {
		return d.contactNotFound(args[0]), nil
	}
	if err := record.RemovePhone(args[1]); err != nil {
		if engine.IsNotFound(err) {
			return d.phoneNotFound(args[1]), nil
		}
		return "", err
	}
	return d.Messages.Get(config.TKeyPhoneRemoved), nil
}

// exportCalendar writes every birthday as an iCalendar file at the given path.
func (d *Dispatcher) exportCalendar(ctx context.Context, args []string) (string, error) {
	if err := requireArgs(args, 1, config.UsageExportCal); err != nil {
		return "", err
	}
	path := args[0]
	failed := d.Messages.Format(config.TKeyCalFailed, map[string]any{"Path": path})

	data, _, err := d.Calendar.Generate(ctx, d.Book, d.ReminderTrigger)
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, err,
		)
		return failed, nil
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		slog.Error(config.ErrCalendarWrite,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyFile, path,
			config.LogKeyError, err,
		)
		return failed, nil
	}
	return d.Messages.Format(config.TKeyCalExported, map[string]any{"Path": path}), nil
}

// formatSummary feeds catalog text into calendar event titles.
func (d *Dispatcher) formatSummary(name string, age int) string {
	if age == 0 {
		return d.Messages.Format(config.TKeyEvtSummary, map[string]any{"Name": name})
	}
	return d.Messages.Format(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
}
