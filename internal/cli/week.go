package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tempus"
	"github.com/roach88/tempus/civil"
)

// WeekReport locates a date in the week and year structure of the
// calendar.
type WeekReport struct {
	Date       string `json:"date"`
	Epoch      int64  `json:"epoch"`
	Weekday    string `json:"weekday"`
	ISOYear    int    `json:"iso_year"`
	ISOWeek    int    `json:"iso_week"`
	Label      string `json:"iso_label"`
	YearDay    int    `json:"year_day"`
	DaysInYear int    `json:"days_in_year"`
	Leap       bool   `json:"leap"`
}

// NewWeekCommand creates the week command.
func NewWeekCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week <date|epoch>",
		Short: "Locate a date in the ISO week calendar",
		Long: `Locate a date in the ISO week calendar.

The argument is either a YYYY-MM-DD date or a Unix epoch; both are
read as UTC. The report gives the weekday, the ISO 8601 week and
week-numbering year (which near January 1 can differ from the
calendar year), the ordinal day, and the leap-year status.

Example:
  tempus week 2024-10-14
  tempus week 1728933069
  tempus week 2021-01-01`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeek(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runWeek(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var (
		dt    civil.DateTime
		epoch int64
	)

	if sec, err := strconv.ParseInt(arg, 10, 64); err == nil {
		epoch = sec
		dt = tempus.Unix(sec, 0).DateTime()
	} else {
		parsed, perr := parseCivilDate(arg)
		if perr != nil {
			var cerr *civil.Error
			if errors.As(perr, &cerr) {
				return outputConversionError(formatter, perr)
			}
			return outputError(formatter, ErrCodeBadArgument, perr.Error())
		}
		at, ferr := tempus.FromDateTime(parsed)
		if ferr != nil {
			return outputConversionError(formatter, ferr)
		}
		dt = parsed
		epoch = at.Unix()
	}

	report, err := buildWeekReport(dt, epoch)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}
	writeWeekText(formatter.Writer, report)
	return nil
}

// buildWeekReport derives the week placement of a valid date.
func buildWeekReport(dt civil.DateTime, epoch int64) (*WeekReport, error) {
	weekday, err := dt.Weekday()
	if err != nil {
		return nil, err
	}
	isoYear, isoWeek, err := dt.ISOWeek()
	if err != nil {
		return nil, err
	}
	yearDay, err := dt.YearDay()
	if err != nil {
		return nil, err
	}

	return &WeekReport{
		Date:       fmt.Sprintf("%04d-%02d-%02d", dt.Year, int(dt.Month), dt.Day),
		Epoch:      epoch,
		Weekday:    weekday.String(),
		ISOYear:    isoYear,
		ISOWeek:    isoWeek,
		Label:      fmt.Sprintf("%d-W%02d", isoYear, isoWeek),
		YearDay:    yearDay,
		DaysInYear: civil.DaysInYear(dt.Year),
		Leap:       civil.IsLeapYear(dt.Year),
	}, nil
}

func writeWeekText(w io.Writer, r *WeekReport) {
	fmt.Fprintf(w, "Date:       %s\n", r.Date)
	fmt.Fprintf(w, "Weekday:    %s\n", r.Weekday)
	fmt.Fprintf(w, "ISO week:   %s\n", r.Label)
	fmt.Fprintf(w, "Year day:   %d of %d\n", r.YearDay, r.DaysInYear)
	fmt.Fprintf(w, "Leap year:  %s\n", yesNo(r.Leap))
	fmt.Fprintf(w, "Epoch:      %d\n", r.Epoch)
}

// parseCivilDate reads a YYYY-MM-DD date. A leading minus selects a
// proleptic year before year zero.
func parseCivilDate(s string) (civil.DateTime, error) {
	body := s
	negative := false
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}

	parts := strings.Split(body, "-")
	if len(parts) != 3 {
		return civil.DateTime{}, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
	}

	var nums [3]int
	for i, part := range parts {
		if part == "" {
			return civil.DateTime{}, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return civil.DateTime{}, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
		}
		nums[i] = v
	}

	year := nums[0]
	if negative {
		year = -year
	}

	dt := civil.DateTime{Year: year, Month: civil.Month(nums[1]), Day: nums[2]}
	if err := civil.ValidateDate(dt.Year, dt.Month, dt.Day); err != nil {
		return civil.DateTime{}, err
	}
	return dt, nil
}
