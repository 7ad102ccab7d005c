package bigquery

import (
	"context"
	"math/big"

	bq "cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/domain"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é a porta de consulta do warehouse analítico. Todas as consultas são
// parametrizadas; nenhum valor de usuário entra no texto SQL.
type Client interface {
	RunQuery(ctx context.Context, sql string, params map[string]any) ([]domain.Row, error)
	Close() error
}

type client struct {
	bq       *bq.Client
	location string
}

// serviceAccountKey é o JSON mínimo de credencial aceito pelo SDK do Google.
type serviceAccountKey struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// NewClient abre a conexão com o BigQuery usando a service account da
// configuração; sem e-mail/chave configurados cai no Application Default
// Credentials (útil em ambiente GCP).
func NewClient(ctx context.Context, cfg config.BigQuery) (Client, error) {
	var opts []option.ClientOption

	if cfg.ClientEmail != "" && cfg.PrivateKey != "" {
		key, err := json.Marshal(serviceAccountKey{
			Type:        "service_account",
			ProjectID:   cfg.ProjectID,
			PrivateKey:  cfg.PrivateKey,
			ClientEmail: cfg.ClientEmail,
			TokenURI:    "https://oauth2.googleapis.com/token",
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao montar credencial do BigQuery")
		}
		opts = append(opts, option.WithCredentialsJSON(key))
	}

	bqClient, err := bq.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar no BigQuery")
	}

	return &client{bq: bqClient, location: cfg.Location}, nil
}

func (c *client) RunQuery(ctx context.Context, sql string, params map[string]any) ([]domain.Row, error) {
	query := c.bq.Query(sql)
	query.Location = c.location

	for name, value := range params {
		query.Parameters = append(query.Parameters, bq.QueryParameter{Name: name, Value: value})
	}

	it, err := query.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar consulta no BigQuery")
	}

	var rows []domain.Row
	for {
		var record map[string]bq.Value
		err := it.Next(&record)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao iterar resultado do BigQuery")
		}

		row := make(domain.Row, len(record))
		for field, value := range record {
			row[field] = normalize(value)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (c *client) Close() error {
	return c.bq.Close()
}

// normalize converte os tipos específicos do driver para os tipos planos que
// as agregações entendem: DATE vira string ISO e NUMERIC vira float64.
func normalize(value bq.Value) any {
	switch v := value.(type) {
	case civil.Date:
		return v.String()
	case *big.Rat:
		f, _ := v.Float64()
		return f
	default:
		return v
	}
}
