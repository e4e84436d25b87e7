package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhaus/mskcfg/internal/platform/msk"
)

// fakeFinder is a canned-response clusterFinder.
type fakeFinder struct {
	info *msk.ClusterInfo
	err  error
}

func (f *fakeFinder) FindCluster(_ context.Context, _ string) (*msk.ClusterInfo, error) {
	return f.info, f.err
}

func stubClusterFinder(t *testing.T, finder clusterFinder, err error) {
	orig := newClusterFinder
	t.Cleanup(func() { newClusterFinder = orig })
	newClusterFinder = func(_ context.Context, _ string) (clusterFinder, error) {
		return finder, err
	}
}

func compliantInfo() *msk.ClusterInfo {
	return &msk.ClusterInfo{
		Name:                "orders",
		ARN:                 "arn:aws:kafka:eu-central-1:123456789012:cluster/orders/abc",
		State:               "ACTIVE",
		ClusterType:         "PROVISIONED",
		KafkaVersion:        "2.8.1",
		NumberOfBrokerNodes: 6,
		InstanceType:        "kafka.m5.large",
		EBSVolumeSize:       1000,
		MonitoringLevel:     "PER_BROKER",
		Subnets:             []string{"subnet-a", "subnet-b", "subnet-c"},
		BootstrapBrokers:    "b-1.orders.kafka:9098",
		CreationTime:        time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestDescribe_CompliantCluster(t *testing.T) {
	stubClusterFinder(t, &fakeFinder{info: compliantInfo()}, nil)

	var err error
	output := captureOutput(func() {
		err = Describe(context.Background(), "orders", "", false)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "cluster: orders (ACTIVE)")
	assert.Contains(t, output, "6 x kafka.m5.large")
	assert.Contains(t, output, "b-1.orders.kafka:9098")
	assert.Contains(t, output, "pre-flight rules")
	assert.NotContains(t, output, "FAIL")
}

func TestDescribe_NonCompliantCluster(t *testing.T) {
	info := compliantInfo()
	info.InstanceType = "kafka.m4.large" // retired size, not in the allow-list
	stubClusterFinder(t, &fakeFinder{info: info}, nil)

	var err error
	output := captureOutput(func() {
		err = Describe(context.Background(), "orders", "", false)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "kafka.m4.large")
}

func TestDescribe_JSONReport(t *testing.T) {
	stubClusterFinder(t, &fakeFinder{info: compliantInfo()}, nil)

	var err error
	output := captureOutput(func() {
		err = Describe(context.Background(), "orders", "", true)
	})
	require.NoError(t, err)

	var report DescribeReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.True(t, report.Compliant)
	require.NotNil(t, report.Cluster)
	assert.Equal(t, "orders", report.Cluster.Name)
}

func TestDescribe_ClusterNotFound(t *testing.T) {
	stubClusterFinder(t, &fakeFinder{err: msk.ErrClusterNotFound}, nil)

	err := Describe(context.Background(), "orders", "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, msk.ErrClusterNotFound)
}

func TestDescribe_ClientCreationError(t *testing.T) {
	stubClusterFinder(t, nil, errors.New("no credentials"))

	err := Describe(context.Background(), "orders", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create MSK client")
}
