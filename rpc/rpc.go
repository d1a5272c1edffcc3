// Package rpc exposes a DB over net/rpc for simple remote access.
package rpc

import (
	"log"
	"net"
	"net/rpc"

	logkv "logkv-go"
)

// ServiceName is the name the KV service is registered under.
const ServiceName = "LogKV"

// Service wraps a DB with net/rpc-callable methods.
type Service struct {
	db *logkv.DB
}

func NewService(db *logkv.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Put(kv map[string]string, reply *string) error {
	for key, value := range kv {
		if err := s.db.Put([]byte(key), []byte(value)); err != nil {
			return err
		}
	}
	*reply = "OK"
	return nil
}

func (s *Service) Get(key string, value *string) error {
	v, err := s.db.Get([]byte(key))
	if err != nil {
		return err
	}
	*value = string(v)
	return nil
}

func (s *Service) Delete(key string, reply *string) error {
	if err := s.db.Delete([]byte(key)); err != nil {
		return err
	}
	*reply = "OK"
	return nil
}

func (s *Service) ListKeys(_ struct{}, keys *[]string) error {
	for _, key := range s.db.ListKeys() {
		*keys = append(*keys, string(key))
	}
	return nil
}

// Serve registers the service and accepts connections on addr until the
// listener fails. It blocks.
func Serve(db *logkv.DB, addr string) error {
	server := rpc.NewServer()
	if err := server.RegisterName(ServiceName, NewService(db)); err != nil {
		return err
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	log.Printf("rpc server listening on %s", addr)
	server.Accept(listener)
	return nil
}
