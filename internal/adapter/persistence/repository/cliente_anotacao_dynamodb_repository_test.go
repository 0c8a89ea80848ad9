package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tractus/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// fakeDynamo answers DynamoDB JSON calls keyed by the X-Amz-Target operation.
func fakeDynamo(t *testing.T, answers map[string]string, seen *[]string) *dynamodb.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		target := r.Header.Get("X-Amz-Target")
		*seen = append(*seen, target+" "+string(body))
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		answer, ok := answers[target]
		if !ok {
			answer = "{}"
		}
		_, _ = io.WriteString(w, answer)
	}))
	t.Cleanup(srv.Close)

	return dynamodb.New(dynamodb.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		Credentials:  credentials.NewStaticCredentialsProvider("local", "local", ""),
	})
}

func TestClienteAnotacaoDynamoRepository_Create(t *testing.T) {
	var seen []string
	repo := NewClienteAnotacaoDynamoRepository(fakeDynamo(t, nil, &seen), "")

	created := time.Date(2026, 4, 2, 15, 30, 0, 0, time.UTC)
	a := entities.ClienteAnotacao{ID: "a-1", ClienteID: "c-1", AutorID: "u-1", Texto: "visitar obra", CreatedAt: created}
	got, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, a, got)

	require.Len(t, seen, 1)
	require.Contains(t, seen[0], "DynamoDB_20120810.PutItem")
	_, raw, _ := strings.Cut(seen[0], " ")
	body := gjson.Parse(raw)
	require.Equal(t, DefaultNotesTableName, body.Get("TableName").String())
	require.Equal(t, "c-1", body.Get("Item.cliente_id.S").String())
	require.Equal(t, created.Format(time.RFC3339Nano), body.Get("Item.created_at.S").String())
	require.Equal(t, "attribute_not_exists(#id)", body.Get("ConditionExpression").String())
}

func TestClienteAnotacaoDynamoRepository_GetByID(t *testing.T) {
	var seen []string
	client := fakeDynamo(t, map[string]string{
		"DynamoDB_20120810.GetItem": `{"Item":{"id":{"S":"a-1"},"cliente_id":{"S":"c-1"},"texto":{"S":"ok"},"created_at":{"S":"2026-04-02T15:30:00Z"}}}`,
	}, &seen)
	repo := NewClienteAnotacaoDynamoRepository(client, "notes")

	got, err := repo.GetByID(context.Background(), "a-1")
	require.NoError(t, err)
	require.Equal(t, "c-1", got.ClienteID)
	require.Equal(t, time.Date(2026, 4, 2, 15, 30, 0, 0, time.UTC), got.CreatedAt)

	missing, err := NewClienteAnotacaoDynamoRepository(fakeDynamo(t, nil, &seen), "notes").GetByID(context.Background(), "a-2")
	require.NoError(t, err)
	require.Empty(t, missing.ID)
}

func TestClienteAnotacaoDynamoRepository_ListByClienteID(t *testing.T) {
	var seen []string
	client := fakeDynamo(t, map[string]string{
		"DynamoDB_20120810.Query": `{"Count":2,"Items":[
			{"id":{"S":"a-2"},"cliente_id":{"S":"c-1"},"texto":{"S":"segunda"},"created_at":{"S":"2026-04-03T10:00:00Z"}},
			{"id":{"S":"a-1"},"cliente_id":{"S":"c-1"},"texto":{"S":"primeira"},"created_at":{"S":"2026-04-01T10:00:00Z"}}
		]}`,
	}, &seen)
	repo := NewClienteAnotacaoDynamoRepository(client, "notes")

	notas, err := repo.ListByClienteID(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, notas, 2)
	require.Equal(t, "a-1", notas[0].ID)

	_, raw, _ := strings.Cut(seen[0], " ")
	require.Equal(t, notesClienteIDIndex, gjson.Get(raw, "IndexName").String())
	require.True(t, json.Valid([]byte(raw)))
}
