package queue

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// sqsAPI abstracts the AWS SQS client for testability.
type sqsAPI interface {
	GetQueueURL(ctx context.Context, queueName string) (string, error)
	SendMessage(ctx context.Context, input *sqsSendInput) (*sqsSendOutput, error)
}

// sqsSendInput mirrors the fields needed for SQS SendMessage.
type sqsSendInput struct {
	QueueURL    string
	MessageBody string
}

// sqsSendOutput contains the result of a successful SendMessage call.
type sqsSendOutput struct {
	MessageID string
}

// awsSQSClient wraps the real AWS SQS SDK client and implements sqsAPI.
type awsSQSClient struct {
	client *sqs.Client
}

// newAWSSQSClient creates an awsSQSClient configured for the given region.
func newAWSSQSClient(region string) (*awsSQSClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &awsSQSClient{client: sqs.NewFromConfig(cfg)}, nil
}

// GetQueueURL resolves a queue name to its URL.
func (c *awsSQSClient) GetQueueURL(ctx context.Context, queueName string) (string, error) {
	out, err := c.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	return derefString(out.QueueUrl), nil
}

// SendMessage sends a message to the specified SQS queue.
func (c *awsSQSClient) SendMessage(ctx context.Context, input *sqsSendInput) (*sqsSendOutput, error) {
	out, err := c.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &input.QueueURL,
		MessageBody: &input.MessageBody,
	})
	if err != nil {
		return nil, err
	}
	return &sqsSendOutput{MessageID: derefString(out.MessageId)}, nil
}

// derefString safely dereferences a string pointer, returning "" for nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
