package testscommon

// MarshalizerStub -
type MarshalizerStub struct {
	MarshalCalled   func(obj interface{}) ([]byte, error)
	UnmarshalCalled func(obj interface{}, buff []byte) error
}

// Marshal -
func (stub *MarshalizerStub) Marshal(obj interface{}) ([]byte, error) {
	if stub.MarshalCalled != nil {
		return stub.MarshalCalled(obj)
	}

	return nil, nil
}

// Unmarshal -
func (stub *MarshalizerStub) Unmarshal(obj interface{}, buff []byte) error {
	if stub.UnmarshalCalled != nil {
		return stub.UnmarshalCalled(obj, buff)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (stub *MarshalizerStub) IsInterfaceNil() bool {
	return stub == nil
}
