package facade

// Marshalizer is able to encode and decode gogo protobuf wire messages
type Marshalizer interface {
	Marshal(obj interface{}) ([]byte, error)
	Unmarshal(obj interface{}, buff []byte) error
	IsInterfaceNil() bool
}
