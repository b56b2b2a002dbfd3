// internals/features/attendance/audit/mongo_sink.go
package audit

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"klinikku_backend/internals/features/attendance/attendance/service"
)

// MongoSink menulis jejak transisi absensi ke koleksi Mongo.
// Best-effort: gagal insert hanya dicatat ke log, aksi user tetap sukses.
type MongoSink struct {
	col *mongo.Collection
}

// NewMongoSink: nil kalau URI kosong (audit trail dimatikan)
func NewMongoSink(uri string) (*MongoSink, error) {
	if uri == "" {
		return nil, nil
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoSink{
		col: client.Database("klinikku").Collection("attendance_audit"),
	}, nil
}

type auditDoc struct {
	OrgID    string    `bson:"org_id"`
	StaffID  string    `bson:"staff_id"`
	RecordID string    `bson:"record_id"`
	Action   string    `bson:"action"`
	At       time.Time `bson:"at"`
}

func (s *MongoSink) Log(_ context.Context, ev service.AuditEvent) {
	// context request jangan dipakai: insert jalan terus walau request selesai
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		_, err := s.col.InsertOne(ctx, auditDoc{
			OrgID:    ev.OrgID.String(),
			StaffID:  ev.StaffID.String(),
			RecordID: ev.RecordID.String(),
			Action:   ev.Action,
			At:       ev.At,
		})
		if err != nil {
			log.Println("⚠️ audit trail gagal ditulis:", err)
		}
	}()
}
