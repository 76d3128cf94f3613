package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KR-EduLab/Intranet_BLessonPlan/db"
	"github.com/KR-EduLab/Intranet_BLessonPlan/models"
	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

type SearchService struct{}

type sessionContentEs struct {
	SchoolID    string `json:"school_id"`
	TeacherID   string `json:"teacher_id"`
	Grade       int    `json:"grade"`
	ClassNumber int    `json:"class_number"`
	Subject     string `json:"subject"`
	Date        string `json:"date"`
	Content     string `json:"content"`
}

type sessionContentDoc struct {
	ID   string
	Body []byte
}

// sessionContentDocuments builds the documents of a session group. The group
// key comes in separately because rows straight off the wire do not carry
// teacher or section fields yet, the repository stamps those on its own
// copies only. Rows without content are skipped.
func sessionContentDocuments(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
	sessions []models.ClassSession,
) ([]sessionContentDoc, error) {
	var docs []sessionContentDoc
	for _, session := range sessions {
		if session.Content == "" {
			continue
		}
		data, err := json.Marshal(sessionContentEs{
			SchoolID:    schoolID,
			TeacherID:   teacherID,
			Grade:       grade,
			ClassNumber: classNumber,
			Subject:     session.Subject,
			Date:        session.Date,
			Content:     session.Content,
		})
		if err != nil {
			return nil, err
		}
		docs = append(docs, sessionContentDoc{
			ID: fmt.Sprintf(
				"%s-%d-%d-%s-%d-%d-%s-%d",
				schoolID,
				year,
				semester,
				teacherID,
				grade,
				classNumber,
				session.Date,
				session.Period,
			),
			Body: data,
		})
	}
	return docs, nil
}

// IndexSessionContents pushes the written contents of a session group into
// elasticsearch so teachers can search their plans by text.
func (s *SearchService) IndexSessionContents(
	schoolID string,
	year,
	semester int,
	teacherID string,
	grade,
	classNumber int,
	sessions []models.ClassSession,
) *res.ErrorRes {
	docs, err := sessionContentDocuments(
		schoolID,
		year,
		semester,
		teacherID,
		grade,
		classNumber,
		sessions,
	)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	bi, err := models.NewBulkClassSession()
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	for _, doc := range docs {
		err = bi.Add(
			context.Background(),
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(doc.Body),
			},
		)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			}
		}
	}
	if err := bi.Close(context.Background()); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

// Search looks the indexed contents of a teacher up by free text.
func (s *SearchService) Search(
	schoolID,
	teacherID,
	search string,
) (interface{}, *res.ErrorRes) {
	simpleQuery := fmt.Sprintf(
		`"bool": {"must": { "simple_query_string": { "query": "%s*", "analyzer": "standard" } },`,
		search,
	)
	simpleQuery += fmt.Sprintf(
		`"filter": [{ "term": { "school_id": "%s" } }, { "term": { "teacher_id": "%s" } }] }`,
		schoolID,
		teacherID,
	)

	query := db.ConstructQuery(simpleQuery)
	var mapRes map[string]interface{}

	es, err := db.NewConnectionEs()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	response, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(models.CLASS_SESSIONS_INDEX),
		es.Search.WithBody(query),
		es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(&mapRes); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return mapRes["hits"], nil
}

func NewSearchService() *SearchService {
	return &SearchService{}
}
