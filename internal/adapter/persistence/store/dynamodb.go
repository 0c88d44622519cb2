package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"construction_console/internal/usecase/interfaces"
)

const defaultStoreTableName = "console_store"

// DynamoAPI is the subset of the DynamoDB client the store uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type storeItem struct {
	Parent    string `dynamodbav:"parent"`
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	Version   int64  `dynamodbav:"version"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoStore persists leaves in a single DynamoDB table.
//
// Table requirements:
//   - PK: parent (string)
//   - SK: key (string)
//
// Writes are versioned with a conditional put so concurrent patches do not lose fields.
// Change notifications reach subscribers of this process only.
type DynamoStore struct {
	ddb       DynamoAPI
	tableName string
	hub       *hub
	now       func() time.Time
}

var _ interfaces.IRemoteStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = defaultStoreTableName
	}
	return &DynamoStore{ddb: ddb, tableName: tableName, hub: newHub(), now: time.Now}
}

func (s *DynamoStore) key(parent, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"parent": &types.AttributeValueMemberS{Value: parent},
		"key":    &types.AttributeValueMemberS{Value: key},
	}
}

func (s *DynamoStore) getItem(ctx context.Context, parent, key string) (storeItem, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.key(parent, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return storeItem{}, false, err
	}
	if len(out.Item) == 0 {
		return storeItem{}, false, nil
	}
	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return storeItem{}, false, err
	}
	return it, true, nil
}

func (s *DynamoStore) query(ctx context.Context, parent string) ([]storeItem, error) {
	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#parent = :parent"),
		ExpressionAttributeNames: map[string]string{
			"#parent": "parent",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":parent": &types.AttributeValueMemberS{Value: parent},
		},
		ConsistentRead: aws.Bool(true),
	})

	var items []storeItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []storeItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

func (s *DynamoStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	parent, key, err := Split(path)
	if err != nil {
		return nil, err
	}
	it, ok, err := s.getItem(ctx, parent, key)
	if err != nil {
		return nil, fmt.Errorf("store/dynamodb: get %s: %w", path, err)
	}
	if ok {
		return json.RawMessage(it.Value), nil
	}
	items, err := s.query(ctx, Clean(path))
	if err != nil {
		return nil, fmt.Errorf("store/dynamodb: query %s: %w", path, err)
	}
	children := make(map[string]json.RawMessage, len(items))
	for _, it := range items {
		children[it.Key] = json.RawMessage(it.Value)
	}
	return assemble(children)
}

func (s *DynamoStore) Write(ctx context.Context, path string, value json.RawMessage) error {
	if isNull(value) {
		return s.Delete(ctx, path)
	}
	if err := validate(value); err != nil {
		return err
	}
	return s.mutate(ctx, path, func(json.RawMessage) (json.RawMessage, error) {
		return value, nil
	})
}

func (s *DynamoStore) Patch(ctx context.Context, path string, fields json.RawMessage) error {
	if err := validate(fields); err != nil {
		return err
	}
	return s.mutate(ctx, path, func(current json.RawMessage) (json.RawMessage, error) {
		return mergeFields(current, fields)
	})
}

func (s *DynamoStore) mutate(ctx context.Context, path string, next func(current json.RawMessage) (json.RawMessage, error)) error {
	parent, key, err := Split(path)
	if err != nil {
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		current, existed, err := s.getItem(ctx, parent, key)
		if err != nil {
			return fmt.Errorf("store/dynamodb: read %s: %w", path, err)
		}
		var currentValue json.RawMessage
		if existed {
			currentValue = json.RawMessage(current.Value)
		}
		value, err := next(currentValue)
		if err != nil {
			return err
		}

		it := storeItem{
			Parent:    parent,
			Key:       key,
			Value:     string(value),
			Version:   current.Version + 1,
			UpdatedAt: s.now().UTC().Format(time.RFC3339Nano),
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}

		input := &dynamodb.PutItemInput{
			TableName: aws.String(s.tableName),
			Item:      av,
			ExpressionAttributeNames: map[string]string{
				"#key": "key",
			},
		}
		if existed {
			input.ConditionExpression = aws.String("#version = :version")
			input.ExpressionAttributeNames["#version"] = "version"
			delete(input.ExpressionAttributeNames, "#key")
			input.ExpressionAttributeValues = map[string]types.AttributeValue{
				":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(current.Version, 10)},
			}
		} else {
			input.ConditionExpression = aws.String("attribute_not_exists(#key)")
		}

		_, err = s.ddb.PutItem(ctx, input)
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return fmt.Errorf("store/dynamodb: write %s: %w", path, err)
		}

		s.publish([]change{{parent: parent, key: key, value: value, existed: existed}})
		return nil
	}
	return fmt.Errorf("store/dynamodb: write %s: too many concurrent updates", path)
}

// Delete removes the leaf at path and every child stored under path.
func (s *DynamoStore) Delete(ctx context.Context, path string) error {
	parent, key, err := Split(path)
	if err != nil {
		return err
	}
	full := Clean(path)

	kids, err := s.query(ctx, full)
	if err != nil {
		return fmt.Errorf("store/dynamodb: query %s: %w", path, err)
	}
	var changes []change
	for _, kid := range kids {
		old, ok, err := s.deleteItem(ctx, full, kid.Key)
		if err != nil {
			return fmt.Errorf("store/dynamodb: delete %s/%s: %w", path, kid.Key, err)
		}
		if ok {
			changes = append(changes, change{parent: full, key: kid.Key, value: old, existed: true, deleted: true})
		}
	}

	old, ok, err := s.deleteItem(ctx, parent, key)
	if err != nil {
		return fmt.Errorf("store/dynamodb: delete %s: %w", path, err)
	}
	if ok {
		changes = append(changes, change{parent: parent, key: key, value: old, existed: true, deleted: true})
	}
	s.publish(changes)
	return nil
}

func (s *DynamoStore) deleteItem(ctx context.Context, parent, key string) (json.RawMessage, bool, error) {
	out, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.tableName),
		Key:          s.key(parent, key),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Attributes) == 0 {
		return nil, false, nil
	}
	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return nil, false, err
	}
	return json.RawMessage(it.Value), true, nil
}

func (s *DynamoStore) publish(changes []change) {
	if len(changes) == 0 {
		return
	}
	s.hub.deliverMu.Lock()
	defer s.hub.deliverMu.Unlock()
	s.hub.deliver(changes)
}

func (s *DynamoStore) Watch(path string, onValue func(json.RawMessage), onError func(error)) func() {
	parent, key, err := Split(path)
	sub := &subscription{onValue: onValue, onError: onError}
	if err != nil {
		sub.fail(err)
		return func() {}
	}

	s.hub.deliverMu.Lock()
	defer s.hub.deliverMu.Unlock()
	unsubscribe := s.hub.watchValue(Join(parent, key), sub)

	it, ok, err := s.getItem(context.Background(), parent, key)
	switch {
	case err != nil:
		sub.fail(fmt.Errorf("store/dynamodb: load %s: %w", path, err))
	case ok:
		sub.value(json.RawMessage(it.Value))
	default:
		sub.value(nil)
	}
	return unsubscribe
}

func (s *DynamoStore) WatchChildren(path string, onEvent func(interfaces.ChildEvent), onError func(error)) func() {
	parent := Clean(path)
	sub := &subscription{onEvent: onEvent, onError: onError}

	s.hub.deliverMu.Lock()
	defer s.hub.deliverMu.Unlock()
	unsubscribe := s.hub.watchChildren(parent, sub)

	items, err := s.query(context.Background(), parent)
	if err != nil {
		sub.fail(fmt.Errorf("store/dynamodb: load %s: %w", path, err))
		return unsubscribe
	}
	for _, it := range items {
		sub.event(interfaces.ChildEvent{Type: interfaces.ChildAdded, Key: it.Key, Value: json.RawMessage(it.Value)})
	}
	return unsubscribe
}
