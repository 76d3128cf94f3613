package aws_s3

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/KR-EduLab/Intranet_BLessonPlan/settings"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

var settingsData = settings.GetSettings()

type AWSS3 struct {
	sess *session.Session
}

// UploadFile stores the spreadsheet under a uuid-prefixed key so repeated
// uploads of the same filename never collide.
func (a *AWSS3) UploadFile(file *multipart.FileHeader) (*s3manager.UploadOutput, error) {
	opened, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()

	uploader := s3manager.NewUploader(a.sess)
	return uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(fmt.Sprintf("lessonplan/%s_%s", uuid.NewString(), file.Filename)),
		Body:   opened,
	})
}

func (a *AWSS3) GetFile(key string) ([]byte, error) {
	downloader := s3manager.NewDownloader(a.sess)
	buffer := aws.NewWriteAtBuffer([]byte{})

	_, err := downloader.Download(buffer, &s3.GetObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (a *AWSS3) DeleteFile(key string) error {
	client := s3.New(a.sess)
	_, err := client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
	})
	return err
}

func (a *AWSS3) UploadBytes(key string, data []byte) (*s3manager.UploadOutput, error) {
	uploader := s3manager.NewUploader(a.sess)
	return uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
}

func NewAWSS3() *AWSS3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(settingsData.AWS_REGION),
	}))
	return &AWSS3{
		sess: sess,
	}
}
