package product

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/janisto/catalog-lambda/internal/platform/pagination"
)

// Key layout of product items in the catalog table.
const (
	PartitionKey     = "PRODUCT"
	sortKeyPrefix    = "PRODUCT#"
	attrPartitionKey = "PK"
	attrSortKey      = "SK"
)

// QueryAPI is the subset of the DynamoDB client used by DynamoStore.
type QueryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// item is the stored shape of a product.
type item struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	Product
}

// SortKey returns the sort key for p. Keys sort by creation time, then ID.
func SortKey(p Product) string {
	return sortKeyPrefix + p.CreatedAt + "#" + p.ID
}

// NewItem returns the attribute map stored for p.
func NewItem(p Product) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(item{PK: PartitionKey, SK: SortKey(p), Product: p})
	if err != nil {
		return nil, fmt.Errorf("marshal product %s: %w", p.ID, err)
	}
	return av, nil
}

// DynamoStore implements Service on a DynamoDB table.
// Products are listed newest first.
type DynamoStore struct {
	client QueryAPI
	table  string
}

// NewDynamoStore creates a store reading products from table.
func NewDynamoStore(client QueryAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) List(ctx context.Context, limit int, cursor *string) (*Page, error) {
	c, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attrPartitionKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: PartitionKey},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	}
	if c.Value != "" {
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			attrPartitionKey: &types.AttributeValueMemberS{Value: PartitionKey},
			attrSortKey:      &types.AttributeValueMemberS{Value: c.Value},
		}
	}

	out, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	var items []item
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("unmarshal products: %w", err)
	}

	page := &Page{Items: make([]Product, 0, len(items))}
	for _, it := range items {
		page.Items = append(page.Items, it.Product)
	}

	if sk, ok := out.LastEvaluatedKey[attrSortKey].(*types.AttributeValueMemberS); ok && sk.Value != "" {
		page.NextCursor = encodeCursor(sk.Value)
	}
	return page, nil
}

var _ Service = (*DynamoStore)(nil)
