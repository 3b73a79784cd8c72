package mq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"restobot/app/services/menuindex/internal/svc"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

func StartMenuChunkConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	if len(sc.Config.KafkaConf.Brokers) == 0 || sc.Config.KafkaConf.MenuTopic == "" || sc.Config.KafkaConf.Group == "" {
		logx.Infow("skip menu chunk consumer, kafka config missing")
		return nil
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     sc.Config.KafkaConf.Brokers,
		GroupID:     sc.Config.KafkaConf.Group,
		Topic:       sc.Config.KafkaConf.MenuTopic,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		MaxWait:     50 * time.Millisecond,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logx.Errorw("fetch menu chunk message failed", logx.Field("err", err))
			continue
		}

		var evt MenuChunkMessage
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			logx.Errorw("unmarshal menu chunk message failed", logx.Field("err", err))
		} else {
			handleMenuChunkMessage(ctx, sc, evt)
		}

		if err := r.CommitMessages(ctx, m); err != nil {
			logx.Errorw("commit menu chunk message failed", logx.Field("err", err))
		}
	}
}

func handleMenuChunkMessage(ctx context.Context, sc *svc.ServiceContext, message MenuChunkMessage) {
	if sc.ESClient == nil {
		logx.Infow("skip menu chunk message, elasticsearch client unavailable")
		return
	}

	if len(message.Data) == 0 {
		return
	}

	indexName := sc.MenuIndexName()
	eventType := strings.ToUpper(message.Type)

	for _, row := range message.Data {
		docID := strconv.FormatInt(row.ID, 10)
		switch eventType {
		case "DELETE":
			if err := deleteMenuChunkDocument(ctx, sc, indexName, docID); err != nil {
				logx.Errorw("delete menu chunk document failed", logx.Field("id", docID), logx.Field("err", err))
			}
		default:
			if err := upsertMenuChunkDocument(ctx, sc, indexName, docID, row); err != nil {
				logx.Errorw("upsert menu chunk document failed", logx.Field("id", docID), logx.Field("err", err))
			}
		}
	}
}

func upsertMenuChunkDocument(ctx context.Context, sc *svc.ServiceContext, indexName, docID string, row MenuChunkRow) error {
	doc := buildMenuDocument(row)

	if sc.VectorIndexEnabled() {
		if embedding, err := buildChunkEmbedding(ctx, sc, row); err != nil {
			logx.Errorw("compute chunk embedding failed", logx.Field("id", docID), logx.Field("err", err))
		} else if len(embedding) > 0 {
			doc["embedding"] = embedding
		}
	}

	payload := map[string]any{
		"doc":           doc,
		"doc_as_upsert": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode menu chunk document: %w", err)
	}

	res, err := sc.ESClient.Update(indexName, docID, bytes.NewReader(body), sc.ESClient.Update.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("es update call: %w", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	if res.IsError() {
		return fmt.Errorf("es update status %s: %s", res.Status(), strings.TrimSpace(string(respBody)))
	}

	return nil
}

func deleteMenuChunkDocument(ctx context.Context, sc *svc.ServiceContext, indexName, docID string) error {
	res, err := sc.ESClient.Delete(indexName, docID, sc.ESClient.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("es delete call: %w", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete status %s: %s", res.Status(), strings.TrimSpace(string(respBody)))
	}

	return nil
}

func buildMenuDocument(row MenuChunkRow) map[string]any {
	doc := map[string]any{
		"chunk_id": row.ID,
		"section":  row.Section,
		"chunk":    row.Chunk,
	}

	if updatedAt := normalizeChunkTimestamp(row.UpdatedAt); updatedAt != "" {
		doc["updated_at"] = updatedAt
	}

	return doc
}

func buildChunkEmbedding(ctx context.Context, sc *svc.ServiceContext, row MenuChunkRow) ([]float64, error) {
	if sc.Embedder == nil {
		return nil, nil
	}

	text := strings.TrimSpace(strings.Join([]string{row.Section, row.Chunk}, " "))
	if text == "" {
		text = strconv.FormatInt(row.ID, 10)
	}

	embeds, err := sc.Embedder.EmbedStrings(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeds) == 0 || len(embeds[0]) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	if expected := sc.EmbeddingDimension(); expected > 0 && len(embeds[0]) != expected {
		return nil, fmt.Errorf("embedding dimension mismatch, expect %d got %d", expected, len(embeds[0]))
	}
	return embeds[0], nil
}

func normalizeChunkTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	}

	for _, layout := range layouts {
		var (
			parsed time.Time
			err    error
		)

		switch layout {
		case "2006-01-02 15:04:05.999999999", "2006-01-02 15:04:05":
			parsed, err = time.ParseInLocation(layout, raw, time.Local)
		default:
			parsed, err = time.Parse(layout, raw)
		}

		if err == nil {
			return parsed.Format(time.RFC3339Nano)
		}
	}

	if !strings.Contains(raw, "T") && strings.Contains(raw, " ") {
		return strings.Replace(raw, " ", "T", 1)
	}

	return raw
}
