package server

import (
	"fmt"
	"runtime"

	"github.com/edicola-dev/edicola/lib/db"
	"github.com/edicola-dev/edicola/lib/db/engines/alder"
	"github.com/edicola-dev/edicola/lib/news"
	"github.com/edicola-dev/edicola/lib/store/lstore"
	"github.com/edicola-dev/edicola/rpc/common"
	"github.com/edicola-dev/edicola/rpc/serializer"
	"github.com/edicola-dev/edicola/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("rpc")

// NewRPCServer creates a new RPC server hosting the ranking engine
// It takes a config, transport and serializer as parameters
//
// Usage:
//
//	s := server.NewRPCServer(
//		config,
//		http.NewHttpServerTransport(),
//		serializer.NewJSONSerializer(),
//	)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewRPCServer(
	config common.ServerConfig,
	transport transport.IRPCServerTransport,
	serializer serializer.IRPCSerializer,
) rpcServer {
	Logger.Infof("Created RPC Server")
	Logger.Infof(config.String())

	return rpcServer{
		config:     config,
		transport:  transport,
		serializer: serializer,
	}
}

type rpcServer struct {
	config     common.ServerConfig
	transport  transport.IRPCServerTransport
	serializer serializer.IRPCSerializer
	service    *news.Service
	adapter    IRPCServerAdapter
}

func (s *rpcServer) registerTransportHandler() {
	s.transport.RegisterHandler(func(req []byte) []byte {
		var msg common.Message
		var respMsg common.Message

		// Decode the request
		if err := s.serializer.Deserialize(req, &msg); err != nil {
			respMsg = common.Message{
				MsgType: common.MsgTError,
				Err:     fmt.Sprintf("failed to deserialize request: %s", err),
			}
		} else {
			// Let the adapter handle the request
			respMsg = *s.adapter.Handle(&msg, s.service)
		}

		// Return result
		val, err := s.serializer.Serialize(respMsg)
		if err != nil {
			respMsg = common.Message{
				MsgType: common.MsgTError,
				Err:     fmt.Sprintf("failed to serialize response: %s", err),
			}
			val, _ = s.serializer.Serialize(respMsg)
		}
		return val
	})
}

func (s *rpcServer) init() error {
	// Init logger
	common.InitLoggers(s.config)

	// Size the embedded engine
	numShards := s.config.EngineShards
	if numShards < 1 {
		numShards = runtime.NumCPU()
	}

	// Function to create a new database instance
	dbFactory := func() db.OrderedKVDB {
		return alder.NewAlderDB(&alder.DBOptions{NumShards: numShards})
	}

	// Build the engine: storage facade plus the ranking service on top
	st := lstore.NewLocalStore(dbFactory)
	s.service = news.NewService(st, news.DefaultConfig(), nil)
	s.adapter = NewNewsServerAdapter()

	Logger.Infof("engine setup completed successfully")

	// Configure the transport layer
	s.registerTransportHandler()

	return nil
}

// Serve starts the RPC server
// This function will also initialize the engine and start the transport layer
func (s *rpcServer) Serve() error {
	if err := s.init(); err != nil {
		return err
	}
	return s.transport.Listen(s.config)
}
