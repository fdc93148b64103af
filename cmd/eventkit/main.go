package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Entidades expuestas por el API.
var entities = []string{"clients", "kits", "themes", "plans", "products", "leads", "contracts"}

type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

// readPayload lee el body desde --data o --file ("-" = stdin).
func readPayload(data, file string) ([]byte, error) {
	if data != "" {
		return []byte(data), nil
	}
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	if file != "" {
		return os.ReadFile(file)
	}
	return nil, fmt.Errorf("falta el payload (--data o --file)")
}

func entityCommands(cl *client, entity string) *cobra.Command {
	base := "/api/v1/" + entity

	root := &cobra.Command{
		Use:   entity,
		Short: "CRUD de " + entity,
	}

	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista paginada",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", fmt.Sprintf("%s?page=%d&limit=%d", base, page, limit), nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Página (1-based)")
	listCmd.Flags().IntVar(&limit, "limit", 10, "Registros por página")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Trae un registro por id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", base+"/"+args[0], nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	var data, file string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crea un registro (JSON por --data o --file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(data, file)
			if err != nil {
				return err
			}
			status, body, err := cl.do("POST", base, payload)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	createCmd.Flags().StringVar(&data, "data", "", "JSON inline")
	createCmd.Flags().StringVar(&file, "file", "", "Path a un archivo JSON (- = stdin)")

	var patchData, patchFile string
	patchCmd := &cobra.Command{
		Use:   "patch <id>",
		Short: "Actualiza campos de un registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(patchData, patchFile)
			if err != nil {
				return err
			}
			status, body, err := cl.do("PATCH", base+"/"+args[0], payload)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	patchCmd.Flags().StringVar(&patchData, "data", "", "JSON inline")
	patchCmd.Flags().StringVar(&patchFile, "file", "", "Path a un archivo JSON (- = stdin)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Borra un registro (idempotente en el server, 404 si no existía)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("DELETE", base+"/"+args[0], nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	root.AddCommand(listCmd, getCmd, createCmd, patchCmd, deleteCmd)
	return root
}

func main() {
	var (
		baseURL = envOr("EVENTKIT_URL", "http://localhost:8080")
		out     = envOr("EVENTKIT_OUT", "text")
	)

	root := &cobra.Command{
		Use:   "eventkit",
		Short: "CLI para el API de eventkit",
	}
	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del API (env EVENTKIT_URL)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{BaseURL: baseURL, OutFormat: out, HTTP: &http.Client{Timeout: 30 * time.Second}}

	cobra.OnInitialize(func() {
		cl.BaseURL = baseURL
		cl.OutFormat = out
	})

	for _, e := range entities {
		root.AddCommand(entityCommands(cl, e))
	}

	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "Muestra el backend activo por entidad",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/api/v1/storage", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Ping al server",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/healthz", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	root.AddCommand(storageCmd, healthCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
