package sheetsclient

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"
)

type Client interface {
	FetchCSV(url string) ([][]string, error)
}

type SheetsClient struct {
	httpClient *http.Client
}

func NewClient() Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCSV baixa uma planilha publicada em CSV e retorna as linhas já
// separadas em células. Planilhas publicadas usam aspas em células com
// vírgula, então a separação é feita por um parser de CSV de verdade,
// não por split de vírgula.
func (c *SheetsClient) FetchCSV(url string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o CSV: %w", err)
	}

	return records, nil
}
