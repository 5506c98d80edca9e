// Package objectstore uploads character images to an S3-compatible bucket
// (AWS S3, Cloudflare R2, MinIO) and validates image payloads before upload.
package objectstore
