package repository

import (
	"context"
	"sort"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultNotesTableName = "cliente_anotacoes"
	notesClienteIDIndex   = "cliente_id-index"
)

type anotacaoItem struct {
	ID        string `dynamodbav:"id"`
	ClienteID string `dynamodbav:"cliente_id"`
	AutorID   string `dynamodbav:"autor_id,omitempty"`
	Texto     string `dynamodbav:"texto"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClienteAnotacaoDynamoRepository persists client notes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cliente_id-index (PK: cliente_id, SK: created_at)
type ClienteAnotacaoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClienteAnotacaoRepository = (*ClienteAnotacaoDynamoRepository)(nil)

func NewClienteAnotacaoDynamoRepository(ddb *dynamodb.Client, tableName string) *ClienteAnotacaoDynamoRepository {
	if tableName == "" {
		tableName = DefaultNotesTableName
	}
	return &ClienteAnotacaoDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClienteAnotacaoDynamoRepository) Create(ctx context.Context, a entities.ClienteAnotacao) (entities.ClienteAnotacao, error) {
	av, err := attributevalue.MarshalMap(toAnotacaoItem(a))
	if err != nil {
		return entities.ClienteAnotacao{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ClienteAnotacao{}, err
	}
	return a, nil
}

func (r *ClienteAnotacaoDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClienteAnotacao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClienteAnotacao{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClienteAnotacao{}, nil
	}

	var it anotacaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClienteAnotacao{}, err
	}
	return fromAnotacaoItem(it), nil
}

func (r *ClienteAnotacaoDynamoRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.ClienteAnotacao, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notesClienteIDIndex),
		KeyConditionExpression: aws.String("cliente_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clienteID},
		},
	}

	var notas []entities.ClienteAnotacao
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it anotacaoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			notas = append(notas, fromAnotacaoItem(it))
		}
	}
	sort.SliceStable(notas, func(i, j int) bool { return notas[i].CreatedAt.Before(notas[j].CreatedAt) })
	return notas, nil
}

func (r *ClienteAnotacaoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toAnotacaoItem(a entities.ClienteAnotacao) anotacaoItem {
	return anotacaoItem{
		ID:        a.ID,
		ClienteID: a.ClienteID,
		AutorID:   a.AutorID,
		Texto:     a.Texto,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAnotacaoItem(it anotacaoItem) entities.ClienteAnotacao {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ClienteAnotacao{
		ID:        it.ID,
		ClienteID: it.ClienteID,
		AutorID:   it.AutorID,
		Texto:     it.Texto,
		CreatedAt: createdAt,
	}
}
