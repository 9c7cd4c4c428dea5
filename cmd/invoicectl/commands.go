package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/sangkips/confreg-invoicing/internal/application/service"
	"github.com/sangkips/confreg-invoicing/internal/config"
	"github.com/sangkips/confreg-invoicing/internal/logger"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/dto/request"
	"github.com/sangkips/confreg-invoicing/pkg/apperror"
	"github.com/sangkips/confreg-invoicing/pkg/fira"
)

var log = logging.MustGetLogger("invoicectl")

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout

	loadConfig = config.Load
)

type Preview struct {
	File string `short:"f" long:"file" default:"-" description:"registration JSON file, - reads stdin"`
}

type Submit struct {
	File string `short:"f" long:"file" default:"-" description:"registration JSON file, - reads stdin"`
}

type Status struct {
	Args struct {
		ID string `positional-arg-name:"id" description:"FIRA order id"`
	} `positional-args:"yes" required:"yes"`
}

func (x *Preview) Execute(args []string) error {
	svc := newInvoiceService()

	req, err := readRequest(x.File)
	if err != nil {
		return err
	}

	return printJSON(svc.Preview(req.ToEntity()))
}

func (x *Submit) Execute(args []string) error {
	svc := newInvoiceService()

	req, err := readRequest(x.File)
	if err != nil {
		return err
	}

	result, err := svc.Submit(context.Background(), req.ToEntity())
	if err != nil {
		return err
	}
	if result.Demo {
		log.Warning("FIRA_API_KEY is not set, order was not sent")
	}

	return printJSON(result)
}

func (x *Status) Execute(args []string) error {
	svc := newInvoiceService()

	status := svc.Status(context.Background(), x.Args.ID)
	if status == nil {
		return fmt.Errorf("status of order %s is unavailable", x.Args.ID)
	}

	return printJSON(status)
}

func newInvoiceService() *service.InvoiceService {
	cfg := loadConfig()
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	logger.SetupTo(cfg.Log, os.Stderr)

	return service.NewInvoiceService(fira.NewClient(cfg.Fira.ClientConfig()), cfg.Fira.Currency)
}

func readRequest(path string) (*request.InvoiceRequest, error) {
	var r io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req request.InvoiceRequest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty registration input")
		}
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	if err := req.Validate(); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if fields, ok := appErr.Errors.([]apperror.FieldError); ok && len(fields) > 0 {
				return nil, fmt.Errorf("%s: %s %s", appErr.Message, fields[0].Field, fields[0].Message)
			}
		}
		return nil, err
	}

	return &req, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
